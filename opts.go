package treedelta

const (
	DefaultMarker = "(*)"
	DefaultIndent = "  "
)

type renderConfig struct {
	marker string
	indent string
	colors *Colors
}

type RenderOption func(*renderConfig)

// RenderMarker sets the suffix appended to changed lines.
func RenderMarker(m string) RenderOption {
	return func(rc *renderConfig) { rc.marker = m }
}

// RenderIndent sets the per-depth indentation unit.
func RenderIndent(s string) RenderOption {
	return func(rc *renderConfig) { rc.indent = s }
}

// RenderColors colorizes projection lines.
func RenderColors(c *Colors) RenderOption {
	return func(rc *renderConfig) { rc.colors = c }
}
