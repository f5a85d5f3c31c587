package theme

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header    HeaderTheme
	Stats     StatsTheme
	Category  CategoryTheme
	Accordion AccordionTheme
	Footer    FooterTheme
	Modal     ModalTheme
}

// HeaderTheme styles the title block.
type HeaderTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// StatsTheme styles the counter cards.
type StatsTheme struct {
	Card  lipgloss.Style
	Value lipgloss.Style
	Label lipgloss.Style
}

// CategoryTheme styles the category filter buttons.
type CategoryTheme struct {
	Button lipgloss.Style
	Active lipgloss.Style
}

// AccordionTheme styles question rows and revealed answers.
type AccordionTheme struct {
	Question        lipgloss.Style
	ActiveQuestion  lipgloss.Style
	FocusedQuestion lipgloss.Style
	Badge           lipgloss.Style
	Chevron         lipgloss.Style
	Icon            lipgloss.Style
	Answer          lipgloss.Style
	Tags            lipgloss.Style
	Indicator       lipgloss.Style
	EmptyTitle      lipgloss.Style
	EmptyHint       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles centered overlays (help, debug events).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("250"))

	question := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
			Subtitle: lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Stats: StatsTheme{
			Card: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 2),
			Value: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Label: lipgloss.NewStyle().Foreground(muted),
		},
		Category: CategoryTheme{
			Button: button,
			Active: button.
				Foreground(lipgloss.Color("230")).
				Background(accent).
				Bold(true),
		},
		Accordion: AccordionTheme{
			Question:        question,
			ActiveQuestion:  question.Bold(true).Foreground(accent),
			FocusedQuestion: question.Reverse(true),
			Badge:           lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Chevron:         lipgloss.NewStyle().Foreground(muted),
			Icon:            lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			Answer:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(4),
			Tags:            lipgloss.NewStyle().Foreground(lipgloss.Color("109")).PaddingLeft(4),
			Indicator:       lipgloss.NewStyle().Foreground(accent),
			EmptyTitle:      lipgloss.NewStyle().Bold(true),
			EmptyHint:       lipgloss.NewStyle().Foreground(muted),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// CategoryColor returns a stable badge color for a category, spreading
// categories around the hue wheel by a hash of the name.
func CategoryColor(category string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(category))
	hue := float64(h.Sum32() % 360)
	return lipgloss.Color(colorful.Hsv(hue, 0.45, 0.95).Hex())
}
