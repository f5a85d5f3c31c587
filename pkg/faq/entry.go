// Package faq holds the question/answer records and the static catalog they
// are browsed from.
package faq

import (
	"fmt"
	"strings"
)

// Icon is a decorative handle for an entry. It has no behavior beyond naming
// the glyph a renderer should draw.
type Icon string

// Known icons. Unknown values are allowed and render as a plain bullet.
const (
	IconZap           Icon = "zap"
	IconStar          Icon = "star"
	IconHelpCircle    Icon = "help-circle"
	IconSparkles      Icon = "sparkles"
	IconMessageSquare Icon = "message-square"
	IconBookOpen      Icon = "book-open"
	IconGlobe         Icon = "globe"
	IconUsers         Icon = "users"
)

// Entry is one FAQ question/answer record.
type Entry struct {
	ID       int      `json:"id" yaml:"id"`
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Icon     Icon     `json:"icon,omitempty" yaml:"icon,omitempty"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// HashTags renders the tags the way the accordion footer shows them.
func (e Entry) HashTags() string {
	if len(e.Tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " ")
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return fmt.Sprintf("%d %s [%s]", e.ID, e.Question, e.Category)
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.Question) == "" {
		return fmt.Errorf("%w: entry %d has no question", ErrInvalidEntry, e.ID)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: entry %d has no category", ErrInvalidEntry, e.ID)
	}
	if strings.TrimSpace(e.Category) == AllCategories {
		return fmt.Errorf("%w: entry %d uses the reserved category %q", ErrInvalidEntry, e.ID, AllCategories)
	}
	return nil
}
