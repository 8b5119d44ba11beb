package config

const (
	WindowWidth  = 500
	WindowHeight = 700

	TicksPerSecond = 60

	// Navigation buttons, stacked below the panel
	ButtonHeight  = 36
	ButtonSpacing = 4
	ButtonCount   = 4

	// Mesh parameters
	GridPoints     = 5
	NoiseFrequency = 5000.0
	NoiseAmplitude = 50.0
	StrokeWidth    = 2.0

	// Neumorphic switch
	SwitchPadding = 8.0

	SampleRate = 44100
)

// Palette colors the mesh vertices, triangles and point markers.
var Palette = []string{
	"#61dafb",
	"#fb61da",
	"#dafb61",
	"#61fbcf",
	"#cf61fb",
	"#fbcf61",
	"#61dacf",
	"#cf61da",
	"#dacf61",
}

// PanelHeight is the area above the navigation buttons.
func PanelHeight(windowHeight int) int {
	h := windowHeight - ButtonCount*(ButtonHeight+ButtonSpacing)
	if h < 0 {
		return 0
	}
	return h
}
