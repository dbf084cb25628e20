package mathutil

// Mat4 is a 4×4 matrix stored row-major: [r0c0, r0c1, r0c2, r0c3, r1c0, ...].
// This is the element order of a Mitsuba <matrix value="..."/> attribute.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Row returns row r (0–3).
func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

// WithRow returns a copy of m with row r replaced by v.
func (m Mat4) WithRow(r int, v Vec4) Mat4 {
	copy(m[r*4:r*4+4], v[:])
	return m
}

// Col returns column c (0–3).
func (m Mat4) Col(c int) Vec4 {
	return Vec4{m[c], m[4+c], m[8+c], m[12+c]}
}
