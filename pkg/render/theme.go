package render

// Theme is the active color table for a document generation. It travels
// explicitly on the RenderContext rather than as process-wide state, so
// concurrent or repeated generations can use different themes safely.
type Theme struct {
	Ink       Color // primary strokes and text
	Muted     Color // secondary text, linked navigation entries
	Faint     Color // dot grids, ruled lines
	Paper     Color // page background fills
	Highlight Color // "current" navigation entry fill
}

// DefaultTheme returns the standard gray-scale planner palette.
func DefaultTheme() Theme {
	return Theme{
		Ink:       Color{R: 0x22, G: 0x22, B: 0x22},
		Muted:     Color{R: 0x88, G: 0x88, B: 0x88},
		Faint:     Color{R: 0xcc, G: 0xcc, B: 0xcc},
		Paper:     Color{R: 0xff, G: 0xff, B: 0xff},
		Highlight: Color{R: 0xe8, G: 0xe8, B: 0xe8},
	}
}
