package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/webperm/internal/domain/entity"
)

// PermissionRow is one line of the permission table.
type PermissionRow struct {
	Origin string
	Type   entity.PermissionType
	State  entity.PermissionState
}

// PermissionRenderer renders permission decisions.
type PermissionRenderer struct {
	theme *Theme
}

// NewPermissionRenderer creates a renderer with the given theme.
func NewPermissionRenderer(theme *Theme) *PermissionRenderer {
	return &PermissionRenderer{theme: theme}
}

// StateStyle returns the style used for a permission state.
func (r *PermissionRenderer) StateStyle(state entity.PermissionState) lipgloss.Style {
	switch state {
	case entity.PermissionGranted:
		return r.theme.SuccessStyle
	case entity.PermissionDenied:
		return r.theme.ErrorStyle
	case entity.PermissionInvalid:
		return r.theme.WarningStyle
	default:
		return r.theme.Subtle
	}
}

// RenderState renders a single state.
func (r *PermissionRenderer) RenderState(state entity.PermissionState) string {
	return r.StateStyle(state).Render(string(state))
}

// RenderTable renders rows as a bordered table.
func (r *PermissionRenderer) RenderTable(rows []PermissionRow) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("No stored permissions.")
	}

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{row.Origin, string(row.Type), string(row.State)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("ORIGIN", "PERMISSION", "STATE").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Header
			}
			if col == 2 && row >= 0 && row < len(rows) {
				return r.StateStyle(rows[row].State).Padding(0, 1)
			}
			return r.theme.Cell
		})

	return t.String()
}

// RenderDecision renders the outcome of a grant, deny or reset.
func (r *PermissionRenderer) RenderDecision(origin string, permType entity.PermissionType, state entity.PermissionState) string {
	return fmt.Sprintf("%s %s %s %s",
		r.theme.Highlight.Render(origin),
		r.theme.Normal.Render(string(permType)),
		r.theme.Subtle.Render("→"),
		r.RenderState(state),
	)
}

// RenderNotPersistent warns that decisions will not outlive the command.
func (r *PermissionRenderer) RenderNotPersistent(policy entity.PersistentPermissionsPolicy) string {
	return r.theme.WarningStyle.Render(fmt.Sprintf("profile policy %q does not write decisions to disk; this change is discarded on exit", policy))
}

// RenderError renders an error message.
func (r *PermissionRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("Error: ") + r.theme.Normal.Render(err.Error())
}
