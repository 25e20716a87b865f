package dancevis

import "math"

// affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float64

// identityTransform is the identity affine matrix.
var identityTransform = affine{1, 0, 0, 1, 0, 0}

func translation(p Position) affine {
	return affine{1, 0, 0, 1, p.X, p.Y}
}

func rotation(theta float64) affine {
	sin, cos := math.Sincos(theta)
	return affine{cos, sin, -sin, cos, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c affine) affine {
	return affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m affine) affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a position.
func transformPoint(m affine, p Position) Position {
	return Position{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// localFrame maps frame-local coordinates to world space for a frame whose
// origin sits at origin and whose x axis points along angle.
//
//	Rotate(angle) -> Translate(origin)
func localFrame(origin Position, angle float64) affine {
	return multiplyAffine(translation(origin), rotation(angle))
}

// rigidMotion returns the transform carrying a frame at (fromPos, fromAngle)
// onto (toPos, fromAngle+delta). Points attached to the frame keep their
// offset and bearing relative to it.
//
//	Translate(-fromPos) -> Rotate(delta) -> Translate(toPos)
func rigidMotion(fromPos, toPos Position, delta float64) affine {
	if delta == 0 {
		return translation(toPos.sub(fromPos))
	}
	m := multiplyAffine(rotation(delta), translation(fromPos.scale(-1)))
	return multiplyAffine(translation(toPos), m)
}

func isIdentity(m affine) bool {
	return m == identityTransform
}
