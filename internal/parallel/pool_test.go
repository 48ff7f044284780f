package parallel

import (
	"sync/atomic"
	"testing"
)

// TestExecuteAll verifies all work items run exactly once.
func TestExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Errorf("executed %d work items, want 100", got)
	}
}

// TestExecuteAllEmpty verifies empty work is a no-op.
func TestExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

// TestDefaultWorkers verifies GOMAXPROCS fallback.
func TestDefaultWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if pool.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", pool.Workers())
	}
}

// TestCloseIdempotent verifies Close can be called repeatedly.
func TestCloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool reports running after Close")
	}

	// Work after Close is dropped, not deadlocked.
	pool.ExecuteAll([]func(){func() {}})
}

// TestStrips verifies row partitioning covers the full range without
// overlap.
func TestStrips(t *testing.T) {
	tests := []struct {
		name      string
		height, n int
		want      int
	}{
		{"even split", 100, 4, 4},
		{"uneven split", 10, 3, 3},
		{"more workers than rows", 2, 8, 2},
		{"single worker", 50, 1, 1},
		{"zero workers", 50, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strips := Strips(tt.height, tt.n)
			if len(strips) != tt.want {
				t.Fatalf("Strips(%d, %d) returned %d strips, want %d",
					tt.height, tt.n, len(strips), tt.want)
			}

			y := 0
			for _, s := range strips {
				if s.Y0 != y {
					t.Errorf("strip starts at %d, want %d", s.Y0, y)
				}
				if s.Y1 <= s.Y0 {
					t.Errorf("empty strip [%d, %d)", s.Y0, s.Y1)
				}
				y = s.Y1
			}
			if y != tt.height {
				t.Errorf("strips cover %d rows, want %d", y, tt.height)
			}
		})
	}

	if Strips(0, 4) != nil {
		t.Error("Strips(0, n) != nil")
	}
}
