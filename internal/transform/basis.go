package transform

import "mitsuba-camgen/internal/mathutil"

// Basis is the camera frame read from the columns of a to_world matrix.
// Right and Forward keep their scale; Up is normalized.
type Basis struct {
	Matrix  mathutil.Mat4 // row-major, as parsed
	Origin  mathutil.Vec3 // column 3
	Right   mathutil.Vec3 // column 0
	Up      mathutil.Vec3 // column 1
	Forward mathutil.Vec3 // column 2
}

// NewBasis extracts the basis vectors of m.
func NewBasis(m mathutil.Mat4) Basis {
	cm := ColumnMajor(m)
	return Basis{
		Matrix:  m,
		Origin:  cm.Row(3).XYZ(),
		Right:   cm.Row(0).XYZ(),
		Up:      cm.Row(1).XYZ().Normalize(),
		Forward: cm.Row(2).XYZ(),
	}
}

// ColumnMajor returns m transposed, so that row c of the result is column c of m.
func ColumnMajor(m mathutil.Mat4) mathutil.Mat4 {
	return m.Transpose()
}

// Translated returns the row-major matrix with its translation column set to p.
// Columns 0–2 are carried over unchanged.
func (b Basis) Translated(p mathutil.Vec3) mathutil.Mat4 {
	cm := ColumnMajor(b.Matrix).WithRow(3, mathutil.Point(p))
	return cm.Transpose()
}
