package geom

import (
	assert "github.com/arl/assertgo"
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// assertTrue is a thin wrapper so call sites read the same way the Rust
// source's assert!/assert_eq! do, and so the library asserts with a single
// consistent message style.
func assertTrue(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

func assertFinite(v d3.Vec3, format string, args ...interface{}) {
	assertTrue(finite(v.X()) && finite(v.Y()) && finite(v.Z()), format, args...)
}
