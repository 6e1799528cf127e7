package styles

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders a labelled path, noting when it does not exist yet.
func (r *ConfigRenderer) RenderPath(label, path string, exists bool) string {
	out := r.theme.Subtle.Render(label+": ") + r.theme.Highlight.Render(path)
	if !exists {
		out += " " + r.theme.WarningStyle.Render("(not created yet)")
	}
	return out
}

// RenderCreated reports a written file.
func (r *ConfigRenderer) RenderCreated(path string) string {
	return r.theme.SuccessStyle.Render("Wrote ") + r.theme.Normal.Render(path)
}

// RenderExists reports a file left untouched.
func (r *ConfigRenderer) RenderExists(path string) string {
	return r.theme.WarningStyle.Render("Config already exists: ") + r.theme.Normal.Render(path) +
		r.theme.Subtle.Render(" (use --force to overwrite)")
}
