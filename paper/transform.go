package paper

// ID identifies a paper across the desk, surface and logs
type ID string

// Transform is what a surface needs to place one paper
// Translation applies first, then rotation about the paper's own center
type Transform struct {
	TranslateX    float64
	TranslateY    float64
	RotateDegrees float64 // [0, 360)
}

// Surface paints papers. Implemented by the terminal renderer and by test recorders
type Surface interface {
	// ApplyTransform receives the latest transform of a held paper
	ApplyTransform(id ID, t Transform)

	// ApplyStackPriority receives a new paint order. Higher values paint in front
	ApplyStackPriority(id ID, priority int)
}

// NopSurface discards everything
type NopSurface struct{}

func (NopSurface) ApplyTransform(ID, Transform) {}
func (NopSurface) ApplyStackPriority(ID, int)   {}
