// Package brush provides named convex/triangulated solids used as CSG
// primitives, plus loading of arbitrary triangle soups from OBJ files.
package brush

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/ten3roberts/constructive/geom"
	"github.com/ten3roberts/constructive/xform"
)

// Brush is an ordered collection of faces forming a closed, outward-facing
// solid (or an open, single-sided plane facing +Y, in the case of Plane()).
type Brush struct {
	faces []geom.Face
}

// New wraps an existing set of faces as a Brush.
func New(faces []geom.Face) *Brush {
	return &Brush{faces: faces}
}

// Faces returns the brush's triangles.
func (b *Brush) Faces() []geom.Face {
	return b.faces
}

// Transform maps every vertex of every face through m, in place.
func (b *Brush) Transform(m xform.Mat4) {
	for i, f := range b.faces {
		b.faces[i] = f.Map(m.TransformPoint3)
	}
}

// WithTransform returns b after applying m, for chaining at construction
// time.
func (b *Brush) WithTransform(m xform.Mat4) *Brush {
	b.Transform(m)
	return b
}

// Plane returns a flat 2x2 quad centered on the origin lying in the XZ
// plane, made of two triangles that both face +Y.
func Plane() *Brush {
	p1 := d3.Vec3{-1, 0, -1}
	p2 := d3.Vec3{1, 0, -1}
	p3 := d3.Vec3{-1, 0, 1}
	p4 := d3.Vec3{1, 0, 1}

	return New([]geom.Face{
		geom.NewFace(p3, p2, p1),
		geom.NewFace(p3, p4, p2),
	})
}

// Cube returns an outward-facing, CCW-wound unit cube of side 2 centered on
// the origin.
func Cube() *Brush {
	p1 := d3.Vec3{-1, -1, -1}
	p2 := d3.Vec3{-1, -1, 1}
	p3 := d3.Vec3{1, -1, 1}
	p4 := d3.Vec3{1, -1, -1}

	p5 := d3.Vec3{-1, 1, -1}
	p6 := d3.Vec3{-1, 1, 1}
	p7 := d3.Vec3{1, 1, 1}
	p8 := d3.Vec3{1, 1, -1}

	return New([]geom.Face{
		geom.NewFace(p3, p2, p1),
		geom.NewFace(p1, p4, p3),
		geom.NewFace(p5, p6, p7),
		geom.NewFace(p7, p8, p5),
		geom.NewFace(p6, p5, p1),
		geom.NewFace(p1, p2, p6),
		geom.NewFace(p7, p6, p2),
		geom.NewFace(p2, p3, p7),
		geom.NewFace(p8, p7, p3),
		geom.NewFace(p3, p4, p8),
		geom.NewFace(p5, p8, p4),
		geom.NewFace(p4, p1, p5),
	})
}

// UVSphere returns a unit-radius sphere tessellated into slices longitude
// bands and stacks latitude bands, triangulated outward-facing CCW.
func UVSphere(slices, stacks int) *Brush {
	if slices <= 0 {
		slices = 16
	}
	if stacks <= 0 {
		stacks = 12
	}

	const radius = 1.0
	var faces []geom.Face

	point := func(theta, phi float32) d3.Vec3 {
		return d3.Vec3{
			radius * math32.Cos(theta) * math32.Sin(phi),
			radius * math32.Cos(phi),
			radius * math32.Sin(theta) * math32.Sin(phi),
		}
	}

	for i := 0; i < slices; i++ {
		theta1 := float32(i) * math32.Pi * 2 / float32(slices)
		theta2 := float32(i+1) * math32.Pi * 2 / float32(slices)

		for j := 0; j < stacks; j++ {
			phi1 := float32(j) * math32.Pi / float32(stacks)
			phi2 := float32(j+1) * math32.Pi / float32(stacks)

			p1 := point(theta1, phi1)
			p2 := point(theta2, phi1)
			p3 := point(theta2, phi2)
			p4 := point(theta1, phi2)

			if j != 0 {
				faces = append(faces, geom.NewFace(p1, p2, p3))
			}
			if j != stacks-1 {
				faces = append(faces, geom.NewFace(p3, p4, p1))
			}
		}
	}

	return New(faces)
}
