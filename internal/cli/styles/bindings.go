package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/lunar/internal/input"
)

// BindingsRenderer renders bindings documents, check results and input names.
type BindingsRenderer struct {
	theme *Theme
}

// NewBindingsRenderer creates a new BindingsRenderer.
func NewBindingsRenderer(theme *Theme) *BindingsRenderer {
	return &BindingsRenderer{theme: theme}
}

// CheckResult is everything `lunar check` learned about a document.
type CheckResult struct {
	Path     string
	Entries  []input.TableEntry
	Report   *input.Report
	Settings input.Settings
	// Invalid holds structural problems found before resolution.
	Invalid error
}

// OK reports whether the document resolved without any problem.
func (c CheckResult) OK() bool {
	return c.Invalid == nil && c.Report != nil && c.Report.Err() == nil
}

// RenderCheck renders the bound table followed by every skipped entry and conflict.
func (r *BindingsRenderer) RenderCheck(res CheckResult) string {
	parts := []string{r.renderCheckHeader(res), ""}

	if len(res.Entries) > 0 {
		parts = append(parts, r.renderEntries(res.Entries))
	} else {
		parts = append(parts, r.theme.Subtle.Render("Nothing bound"))
	}

	if problems := r.renderProblems(res); problems != "" {
		parts = append(parts, "", problems)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *BindingsRenderer) renderCheckHeader(res CheckResult) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !res.OK() {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconFile), r.theme.Title.Render(res.Path))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))

	var summary string
	if res.Report != nil {
		summary = r.theme.Subtle.Render(fmt.Sprintf(
			"%d bound, %d unbound, %d skipped, %d conflicts, reset pointer on enter: %t",
			res.Report.Bound, res.Report.Unbound, len(res.Report.Errors), len(res.Report.Conflicts),
			res.Settings.ResetPointerOnEnter,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge),
		summary,
	)
}

func (r *BindingsRenderer) renderEntries(entries []input.TableEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		mods := "-"
		if e.Mods != input.ModNone {
			mods = e.Mods.String()
		}
		rows = append(rows, []string{inputIcon(e.ID) + " " + e.ID.String(), strconv.Itoa(int(e.ID)), e.Callback, mods})
	}
	return r.table([]string{"Input", "Code", "Callback", "Modifiers"}, rows)
}

func (r *BindingsRenderer) renderProblems(res CheckResult) string {
	var lines []string
	if res.Invalid != nil {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(res.Invalid.Error())))
	}
	if res.Report != nil {
		for _, e := range res.Report.Errors {
			lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(e.Error())))
		}
		for _, c := range res.Report.Conflicts {
			lines = append(lines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(c.Error())))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return r.theme.Box.Render(r.theme.BoxHeader.Render("Problems") + "\n" + strings.Join(lines, "\n"))
}

// RenderLoadError renders a document that could not be read at all.
func (r *BindingsRenderer) RenderLoadError(path string, err error) string {
	title := fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Title.Render(path))
	return lipgloss.JoinVertical(lipgloss.Left, title, r.theme.Subtle.Render(err.Error()))
}

// RenderKeys renders every input name with its identifier.
func (r *BindingsRenderer) RenderKeys(names []input.InputName) string {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{inputIcon(n.ID) + " " + n.Name, strconv.Itoa(int(n.ID))})
	}
	return r.table([]string{"Input", "Code"}, rows)
}

// RenderWritten confirms a document was written.
func (r *BindingsRenderer) RenderWritten(path string, entries int) string {
	return fmt.Sprintf("%s %s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("Wrote"),
		r.theme.Highlight.Render(path),
		r.theme.Subtle.Render(fmt.Sprintf("(%d bindings)", entries)),
	)
}

func (r *BindingsRenderer) table(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)
	mutedStyle := cellStyle.Foreground(r.theme.Muted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return mutedStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

func inputIcon(id input.Identifier) string {
	if id <= input.MouseButtonLast || id.IsSynthetic() {
		return IconPointer
	}
	return IconKeyboard
}
