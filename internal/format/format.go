// Package format renders entities for terminal display. Placeholders for
// absent fields are a display concern and exist only here; the data
// layer never fabricates them.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/toadoapp/toado/internal/config"
	"github.com/toadoapp/toado/internal/model"
)

// placeholder stands in for a field that was not projected or has no
// value.
const placeholder = "-"

// Border converts configured table characters to a lipgloss border,
// keeping the normal box-drawing defaults for any character left unset.
func Border(cfg config.Table) lipgloss.Border {
	b := lipgloss.NormalBorder()
	apply := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	apply(&b.Top, cfg.Chars.Horizontal)
	apply(&b.Bottom, cfg.Chars.Horizontal)
	apply(&b.Left, cfg.Chars.Vertical)
	apply(&b.Right, cfg.Chars.Vertical)
	apply(&b.TopLeft, cfg.Chars.DownRight)
	apply(&b.TopRight, cfg.Chars.DownLeft)
	apply(&b.BottomLeft, cfg.Chars.UpRight)
	apply(&b.BottomRight, cfg.Chars.UpLeft)
	apply(&b.MiddleLeft, cfg.Chars.VerticalRight)
	apply(&b.MiddleRight, cfg.Chars.VerticalLeft)
	apply(&b.Middle, cfg.Chars.VerticalHorizontal)
	apply(&b.MiddleTop, cfg.Chars.DownHorizontal)
	apply(&b.MiddleBottom, cfg.Chars.UpHorizontal)
	return b
}

// TaskTable renders a task list. The brief view shows id, name,
// priority and status; verbose adds the remaining columns.
func TaskTable(tasks []model.Task, cfg config.Table, verbose bool) string {
	headers := []string{"ID", "NAME", "PRIORITY", "STATUS"}
	if verbose {
		headers = append(headers, "START", "END", "REPEAT", "NOTES")
	}

	t := newTable(cfg, headers)
	for _, task := range tasks {
		row := []string{
			intCell(task.ID),
			strCell(task.Name),
			intCell(task.Priority),
			statusCell(task.Status),
		}
		if verbose {
			row = append(row,
				strCell(task.StartTime),
				strCell(task.EndTime),
				strCell(task.Repeat),
				strCell(task.Notes),
			)
		}
		t.Row(row...)
	}
	return t.String()
}

// ProjectTable renders a project list. The brief view shows id, name
// and the two times; verbose adds notes.
func ProjectTable(projects []model.Project, cfg config.Table, verbose bool) string {
	headers := []string{"ID", "NAME", "START", "END"}
	if verbose {
		headers = append(headers, "NOTES")
	}

	t := newTable(cfg, headers)
	for _, p := range projects {
		row := []string{
			intCell(p.ID),
			strCell(p.Name),
			strCell(p.StartTime),
			strCell(p.EndTime),
		}
		if verbose {
			row = append(row, strCell(p.Notes))
		}
		t.Row(row...)
	}
	return t.String()
}

// TaskDetail renders one task as a label/value block, including assigned
// projects when loaded.
func TaskDetail(t model.Task) string {
	var b strings.Builder
	detailLine(&b, "Id", intCell(t.ID))
	detailLine(&b, "Name", strCell(t.Name))
	detailLine(&b, "Priority", intCell(t.Priority))
	detailLine(&b, "Status", statusCell(t.Status))
	detailLine(&b, "Start Time", strCell(t.StartTime))
	detailLine(&b, "End Time", strCell(t.EndTime))
	detailLine(&b, "Repeats", strCell(t.Repeat))
	detailLine(&b, "Notes", strCell(t.Notes))
	if t.Projects != nil {
		names := make([]string, 0, len(t.Projects))
		for _, p := range t.Projects {
			names = append(names, strCell(p.Name))
		}
		detailLine(&b, "Projects", strings.Join(names, ", "))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ProjectDetail renders one project as a label/value block.
func ProjectDetail(p model.Project) string {
	var b strings.Builder
	detailLine(&b, "Id", intCell(p.ID))
	detailLine(&b, "Name", strCell(p.Name))
	detailLine(&b, "Start Time", strCell(p.StartTime))
	detailLine(&b, "End Time", strCell(p.EndTime))
	detailLine(&b, "Notes", strCell(p.Notes))
	if p.Tasks != nil {
		names := make([]string, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			names = append(names, strCell(t.Name))
		}
		detailLine(&b, "Tasks", strings.Join(names, ", "))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ListFooter reports which slice of the table a capped list shows, e.g.
// "0-10 of 23".
func ListFooter(offset, count int, total int64) string {
	return fmt.Sprintf("\n%d-%d of %d", offset, offset+count, total)
}

func newTable(cfg config.Table, headers []string) *table.Table {
	return table.New().
		Border(Border(cfg)).
		BorderColumn(cfg.SeparateColumns).
		BorderRow(cfg.SeparateRows).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func detailLine(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func strCell(v *string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}

func intCell(v *int64) string {
	if v == nil {
		return placeholder
	}
	return strconv.FormatInt(*v, 10)
}

func statusCell(v *model.Status) string {
	if v == nil {
		return placeholder
	}
	return v.String()
}
