package blend

import "testing"

// Benchmark results feed the compositor's row-strip sizing; Evaluate is
// called once per covered destination pixel.

func benchmarkMode(b *testing.B, mode Mode) {
	var r, g, bb, a float64
	for i := 0; i < b.N; i++ {
		r, g, bb, a, _ = Evaluate(mode, 0.3, 0.2, 0.1, 0.5, 0.8, 0.6, 0.4, 0.9)
	}
	_, _, _, _ = r, g, bb, a
}

func BenchmarkEvaluateNormal(b *testing.B)    { benchmarkMode(b, ModeNormal) }
func BenchmarkEvaluateMultiply(b *testing.B)  { benchmarkMode(b, ModeMultiply) }
func BenchmarkEvaluateScreen(b *testing.B)    { benchmarkMode(b, ModeScreen) }
func BenchmarkEvaluateOverlay(b *testing.B)   { benchmarkMode(b, ModeOverlay) }
func BenchmarkEvaluateHardLight(b *testing.B) { benchmarkMode(b, ModeHardLight) }
func BenchmarkEvaluateAlpha(b *testing.B)     { benchmarkMode(b, ModeAlpha) }
