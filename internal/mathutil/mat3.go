package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

// ScaleColumns multiplies column i by s[i]. Equivalent to M × diag(s),
// which is how a TRS scale folds into the rotation part.
func (m Mat3) ScaleColumns(s Vec3) Mat3 {
	return Mat3{
		m[0] * s[0], m[1] * s[1], m[2] * s[2],
		m[3] * s[0], m[4] * s[1], m[5] * s[2],
		m[6] * s[0], m[7] * s[1], m[8] * s[2],
	}
}
