package render

// Layer determines draw order. Lower values draw first
type Layer int

const (
	LayerBackground Layer = iota
	LayerPapers
	LayerStatus
)

// Layers lists every layer in draw order
var Layers = []Layer{LayerBackground, LayerPapers, LayerStatus}
