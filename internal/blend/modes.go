package blend

// blendNormal alpha-blends the straight current color over the parent.
//
// The result alpha is the parent's alpha, not the current one: a normal
// blend does not change the parent layer's own coverage.
func blendNormal(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	ur, ug, ub := unpremultiply(cr, cg, cb, ca)
	return lerp(pr, ur, ca), lerp(pg, ug, ca), lerp(pb, ub, ca), pa
}

// blendMultiply mixes the straight current color over the parent, then
// multiplies by the parent again. Operating on straight color first keeps
// the product from darkening as the current alpha decreases.
func blendMultiply(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	ur, ug, ub := unpremultiply(cr, cg, cb, ca)
	return lerp(pr, ur, ca) * pr, lerp(pg, ug, ca) * pg, lerp(pb, ub, ca) * pb, ca
}

// blendScreen computes P + C - P*C directly on premultiplied channels.
func blendScreen(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return (pr + cr) - pr*cr, (pg + cg) - pg*cg, (pb + cb) - pb*cb, ca
}

// blendLighten selects the componentwise maximum, premultiplied.
func blendLighten(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return max(cr, pr), max(cg, pg), max(cb, pb), ca
}

// blendDarken selects the componentwise minimum, premultiplied.
func blendDarken(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return min(cr, pr), min(cg, pg), min(cb, pb), ca
}

// blendDifference computes |P - C| on premultiplied channels.
func blendDifference(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return abs(pr - cr), abs(pg - cg), abs(pb - cb), ca
}

// blendAdd sums the premultiplied channels.
func blendAdd(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return cr + pr, cg + pg, cb + pb, ca
}

// blendSubtract computes P - C on premultiplied channels without clamping.
func blendSubtract(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return pr - cr, pg - cg, pb - cb, ca
}

// blendInvert outputs the complement of the parent color. The current color
// only gates the pixel via the degenerate-alpha policy in Evaluate.
func blendInvert(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return 1 - pr, 1 - pg, 1 - pb, ca
}

// blendAlpha masks the parent by the current alpha: the parent's straight
// color is re-premultiplied by the combined alpha ca*pa.
func blendAlpha(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	ur, ug, ub := unpremultiply(pr, pg, pb, pa)
	k := ca * pa
	return premultiply(ur, ug, ub, k)
}

// blendErase is the inverse mask of blendAlpha: the parent is kept where
// the current layer is transparent and erased where it is opaque.
func blendErase(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	ur, ug, ub := unpremultiply(pr, pg, pb, pa)
	k := (1 - ca) * pa
	return premultiply(ur, ug, ub, k)
}

// blendOverlay multiplies or screens per channel, thresholded on the
// parent's straight color. Both inputs are un-premultiplied, the current is
// remixed over the parent by its own alpha, and the piecewise result is
// re-premultiplied by the current alpha.
func blendOverlay(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	upr, upg, upb := unpremultiply(pr, pg, pb, pa)
	ucr, ucg, ucb := unpremultiply(cr, cg, cb, ca)

	mr := lerp(upr, ucr, ca)
	mg := lerp(upg, ucg, ca)
	mb := lerp(upb, ucb, ca)

	return overlayChannel(upr, mr) * ca,
		overlayChannel(upg, mg) * ca,
		overlayChannel(upb, mb) * ca,
		ca
}

// overlayChannel applies the classic overlay piecewise formula for one
// channel. A parent value of exactly 0.5 takes the light (screen) branch.
func overlayChannel(parent, current float64) float64 {
	if parent < 0.5 {
		return 2 * current * parent
	}
	return 1 - 2*(1-parent)*(1-current)
}

// blendHardLight multiplies or screens per channel, thresholded on the
// current color. Unlike Overlay it operates on the premultiplied channels
// directly, with no un-premultiply step.
func blendHardLight(cr, cg, cb, ca, pr, pg, pb, pa float64) (float64, float64, float64, float64) {
	return hardLightChannel(cr, pr), hardLightChannel(cg, pg), hardLightChannel(cb, pb), ca
}

// hardLightChannel applies the hard-light piecewise formula for one
// channel. A current value of exactly 0.5 takes the dark (multiply) branch.
func hardLightChannel(current, parent float64) float64 {
	if current <= 0.5 {
		return current * parent
	}
	return parent + current - parent*current
}
