package tint

// Perceived luminance coefficients. These exact constants are baked into
// the shipped asset calibration; golden-image comparisons depend on them.
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// Apply tints a buffer toward a target color while preserving luminance
// detail, returning a fresh buffer of the same dimensions:
//
//  1. extract perceived luminance L per pixel
//  2. tinted candidate = L * target, per channel
//  3. output = original*(1-strength) + tinted*strength
//  4. clamp channels to [0,1]
//
// Alpha passes through unmodified. Strength 0 returns the original
// colors; strength 1 fully replaces hue with L*target. Out-of-gamut
// target or strength values are tolerated (upstream callers pass
// slightly out-of-range calibration values on purpose) and the result
// is clamped rather than rejected.
//
// Fails with *ShapeError if the flat pixel slice is not a whole number
// of RGBA quads or does not match the stated dimensions.
func Apply(b *Buffer, target [3]float64, strength float64) (*Buffer, error) {
	if len(b.Pix)%4 != 0 || len(b.Pix) != b.Width*b.Height*4 {
		return nil, &ShapeError{Len: len(b.Pix), Width: b.Width, Height: b.Height}
	}

	out := &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]float32, len(b.Pix)),
	}

	keep := 1.0 - strength
	for i := 0; i < len(b.Pix); i += 4 {
		r := float64(b.Pix[i])
		g := float64(b.Pix[i+1])
		bl := float64(b.Pix[i+2])

		lum := lumR*r + lumG*g + lumB*bl

		out.Pix[i] = clamp01(r*keep + lum*target[0]*strength)
		out.Pix[i+1] = clamp01(g*keep + lum*target[1]*strength)
		out.Pix[i+2] = clamp01(bl*keep + lum*target[2]*strength)
		out.Pix[i+3] = b.Pix[i+3]
	}

	return out, nil
}

// Luminance returns the perceived luminance of one RGB triple using the
// same coefficients as Apply.
func Luminance(r, g, b float64) float64 {
	return lumR*r + lumG*g + lumB*b
}

func clamp01(v float64) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
