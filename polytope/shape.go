package polytope

import "github.com/rafewenger/iso3D-sub000/enumreg"

// Shape tags the combinatorial kind of a Polytope.
type Shape int

const (
	ShapeUndefined Shape = iota
	ShapeCube
	ShapeSimplex
	ShapePyramid
	ShapeSimplexPrism
)

var shapeRegistry = enumreg.New(ShapeUndefined,
	enumreg.Entry[Shape]{Value: ShapeCube, Name: "Cube"},
	enumreg.Entry[Shape]{Value: ShapeSimplex, Name: "Simplex"},
	enumreg.Entry[Shape]{Value: ShapePyramid, Name: "Pyramid"},
	enumreg.Entry[Shape]{Value: ShapeSimplexPrism, Name: "SimplexPrism"},
)

// String returns the canonical XIT polyShape string for the shape.
func (s Shape) String() string {
	if name := shapeRegistry.String(s); name != "" {
		return name
	}
	return "Undefined"
}

// ShapeFromString is a case-insensitive lookup; unknown strings map to
// ShapeUndefined.
func ShapeFromString(s string) Shape {
	return shapeRegistry.EnumValue(s)
}
