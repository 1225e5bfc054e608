// Package xform provides the affine transform used to place brushes in a
// scene. It is intentionally small: translation, axis scale and the point
// transform the rest of the library needs, nothing a GPU pipeline would
// require.
package xform

import "github.com/arl/gogeo/f32/d3"

// Mat4 is a row-major affine 4x4 matrix. The row-major layout follows the
// teacher's own matrix convention (see DESIGN.md), adapted to float32 over
// d3.Vec3. Its methods take value receivers and return new matrices; none
// mutates the receiver.
type Mat4 struct {
	Xx, Xy, Xz, Xw float32
	Yx, Yy, Yz, Yw float32
	Zx, Zy, Zz, Zw float32
	Wx, Wy, Wz, Ww float32
}

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		Xx: 1, Yy: 1, Zz: 1, Ww: 1,
	}
}

// Translation returns the transform that translates by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m.Wx, m.Wy, m.Wz = x, y, z
	return m
}

// ScaleXYZ returns the transform that scales each axis independently.
func ScaleXYZ(x, y, z float32) Mat4 {
	return Mat4{
		Xx: x, Yy: y, Zz: z, Ww: 1,
	}
}

// Scale returns the transform that scales all three axes uniformly.
func Scale(s float32) Mat4 {
	return ScaleXYZ(s, s, s)
}

// Mult returns m composed with r, applied as m then r: (m.Mult(r)).TransformPoint3(p) == r.TransformPoint3(m.TransformPoint3(p)).
func (m Mat4) Mult(r Mat4) Mat4 {
	return Mat4{
		Xx: m.Xx*r.Xx + m.Xy*r.Yx + m.Xz*r.Zx + m.Xw*r.Wx,
		Xy: m.Xx*r.Xy + m.Xy*r.Yy + m.Xz*r.Zy + m.Xw*r.Wy,
		Xz: m.Xx*r.Xz + m.Xy*r.Yz + m.Xz*r.Zz + m.Xw*r.Wz,
		Xw: m.Xx*r.Xw + m.Xy*r.Yw + m.Xz*r.Zw + m.Xw*r.Ww,

		Yx: m.Yx*r.Xx + m.Yy*r.Yx + m.Yz*r.Zx + m.Yw*r.Wx,
		Yy: m.Yx*r.Xy + m.Yy*r.Yy + m.Yz*r.Zy + m.Yw*r.Wy,
		Yz: m.Yx*r.Xz + m.Yy*r.Yz + m.Yz*r.Zz + m.Yw*r.Wz,
		Yw: m.Yx*r.Xw + m.Yy*r.Yw + m.Yz*r.Zw + m.Yw*r.Ww,

		Zx: m.Zx*r.Xx + m.Zy*r.Yx + m.Zz*r.Zx + m.Zw*r.Wx,
		Zy: m.Zx*r.Xy + m.Zy*r.Yy + m.Zz*r.Zy + m.Zw*r.Wy,
		Zz: m.Zx*r.Xz + m.Zy*r.Yz + m.Zz*r.Zz + m.Zw*r.Wz,
		Zw: m.Zx*r.Xw + m.Zy*r.Yw + m.Zz*r.Zw + m.Zw*r.Ww,

		Wx: m.Wx*r.Xx + m.Wy*r.Yx + m.Wz*r.Zx + m.Ww*r.Wx,
		Wy: m.Wx*r.Xy + m.Wy*r.Yy + m.Wz*r.Zy + m.Ww*r.Wy,
		Wz: m.Wx*r.Xz + m.Wy*r.Yz + m.Wz*r.Zz + m.Ww*r.Wz,
		Ww: m.Wx*r.Xw + m.Wy*r.Yw + m.Wz*r.Zw + m.Ww*r.Ww,
	}
}

// TransformPoint3 applies the affine transform to a point (implicit w=1).
func (m Mat4) TransformPoint3(p d3.Vec3) d3.Vec3 {
	x, y, z := p.X(), p.Y(), p.Z()
	return d3.Vec3{
		x*m.Xx + y*m.Yx + z*m.Zx + m.Wx,
		x*m.Xy + y*m.Yy + z*m.Zy + m.Wy,
		x*m.Xz + y*m.Yz + z*m.Zz + m.Wz,
	}
}
