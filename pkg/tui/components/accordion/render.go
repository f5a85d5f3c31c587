package accordion

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/glyph"
	"tableflip.dev/faq/pkg/tui/theme"
)

// Empty-state copy shown when the filtered list has no rows.
const (
	EmptyTitle = "No questions found for this category"
	EmptyHint  = "Try selecting a different category or check back later!"
)

// Layout is the rendered accordion plus the line each row header starts on.
type Layout struct {
	Content string
	Offsets []int
	Heights []int
}

// Render draws entries as accordion rows. expanded reports which positions
// are open and focus marks the highlighted row (-1 for none). Render has no
// side effects.
func Render(entries []faq.Entry, expanded func(int) bool, focus, width int, st theme.AccordionTheme) Layout {
	if len(entries) == 0 {
		return Layout{Content: st.EmptyTitle.Render(EmptyTitle) + "\n" + st.EmptyHint.Render(EmptyHint)}
	}
	if expanded == nil {
		expanded = func(int) bool { return false }
	}
	wrap := max(width-6, 20)

	var lines []string
	layout := Layout{
		Offsets: make([]int, len(entries)),
		Heights: make([]int, len(entries)),
	}
	for i, e := range entries {
		open := expanded(i)
		layout.Offsets[i] = len(lines)

		lines = append(lines, header(e, open, i == focus, st))
		if open {
			answer := wordwrap.String(e.Answer, wrap)
			for _, l := range strings.Split(answer, "\n") {
				lines = append(lines, st.Indicator.Render("│")+st.Answer.Render(l))
			}
			if tags := e.HashTags(); tags != "" {
				lines = append(lines, st.Indicator.Render("│")+st.Tags.Render(tags))
			}
			lines = append(lines, "")
		}
		layout.Heights[i] = len(lines) - layout.Offsets[i]
	}
	layout.Content = strings.Join(lines, "\n")
	return layout
}

func header(e faq.Entry, open, focused bool, st theme.AccordionTheme) string {
	question := st.Question
	if open {
		question = st.ActiveQuestion
	}
	if focused {
		question = question.Inherit(st.FocusedQuestion)
	}
	indicator := " "
	if open {
		indicator = st.Indicator.Render("│")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		indicator,
		st.Chevron.Render(glyph.Chevron(open)),
		" ",
		st.Icon.Render(glyph.For(e.Icon)),
		" ",
		question.Render(e.Question),
		"  ",
		st.Badge.Foreground(theme.CategoryColor(e.Category)).Render("["+e.Category+"]"),
	)
}
