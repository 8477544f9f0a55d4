package spawn

import "github.com/lixenwraith/droid-court/parameter"

// Field is the rectangular court centered on the origin plus the spawn band beyond its far edge
type Field struct {
	HalfWidth  float64
	HalfLength float64
	SpawnGap   float64
	FarBand    float64
}

// DefaultField returns the reference 800x800 court
func DefaultField() Field {
	return Field{
		HalfWidth:  parameter.CourtHalfWidth,
		HalfLength: parameter.CourtHalfLength,
		SpawnGap:   parameter.SpawnGap,
		FarBand:    parameter.SpawnFarBand,
	}
}

// Contains reports whether a ground point lies within the court, edges included
func (f Field) Contains(x, z float64) bool {
	return x >= -f.HalfWidth && x <= f.HalfWidth && z >= -f.HalfLength && z <= f.HalfLength
}

// PastNearEdge reports whether z has crossed the near boundary
func (f Field) PastNearEdge(z float64) bool {
	return z < -f.HalfLength
}

// SpawnZMin is the near edge of the spawn band
func (f Field) SpawnZMin() float64 {
	return f.HalfLength + f.SpawnGap
}
