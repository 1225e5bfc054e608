package brush

import (
	"fmt"

	"github.com/arl/gobj"
	"github.com/arl/gogeo/f32/d3"
	"github.com/ten3roberts/constructive/geom"
)

// FromOBJ loads an arbitrary triangle soup from an OBJ file, fan-triangulating
// every polygon with more than 3 vertices the way MeshLoaderObj triangulates
// polygonal faces for recast input.
func FromOBJ(path string) (*Brush, error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return nil, fmt.Errorf("brush: load %q: %w", path, err)
	}

	var faces []geom.Face
	for _, poly := range obj.Polys() {
		if len(poly) < 3 {
			continue
		}
		a := vertexToVec3(poly[0])
		for i := 2; i < len(poly); i++ {
			b := vertexToVec3(poly[i-1])
			c := vertexToVec3(poly[i])
			faces = append(faces, geom.NewFace(a, b, c))
		}
	}

	return New(faces), nil
}

func vertexToVec3(v gobj.Vertex) d3.Vec3 {
	return d3.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
