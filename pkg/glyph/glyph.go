package glyph

import (
	"tableflip.dev/faq/pkg/faq"
)

// Glyph maps an icon handle to the symbol drawn for it.
type Glyph struct {
	Icon    faq.Icon
	Symbol  string
	Meaning string
}

// Row direction indicators.
const (
	Collapsed = "▸"
	Expanded  = "▾"
	// Fallback is drawn for icons without a glyph.
	Fallback = "•"
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Icon: faq.IconZap, Symbol: "ϟ", Meaning: "zap"},
		{Icon: faq.IconStar, Symbol: "★", Meaning: "star"},
		{Icon: faq.IconHelpCircle, Symbol: "?", Meaning: "help"},
		{Icon: faq.IconSparkles, Symbol: "✷", Meaning: "sparkles"},
		{Icon: faq.IconMessageSquare, Symbol: "✉", Meaning: "message"},
		{Icon: faq.IconBookOpen, Symbol: "❐", Meaning: "book"},
		{Icon: faq.IconGlobe, Symbol: "◍", Meaning: "globe"},
		{Icon: faq.IconUsers, Symbol: "☺", Meaning: "users"},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

// For resolves an icon to its symbol, falling back to a plain bullet.
func For(icon faq.Icon) string {
	for _, g := range DefaultGlyphs() {
		if g.Icon == icon {
			return g.Symbol
		}
	}
	return Fallback
}

// Chevron returns the direction indicator for a row.
func Chevron(expanded bool) string {
	if expanded {
		return Expanded
	}
	return Collapsed
}
