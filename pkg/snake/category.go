// Package snake holds interactive prompts for the cobra commands.
package snake

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/faq/pkg/faq"
)

// CategoryItem is one row of the category picker.
type CategoryItem struct {
	Name  string
	Count int
}

// CategoryItems lists the category options of c with their sizes.
func CategoryItems(c *faq.Catalog) []CategoryItem {
	opts := c.CategoryOptions()
	items := make([]CategoryItem, 0, len(opts))
	for _, name := range opts {
		items = append(items, CategoryItem{Name: name, Count: c.Count(name)})
	}
	return items
}

func categorySearcher(items []CategoryItem) func(string, int) bool {
	return func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(items[index].Name), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}
}

// PromptCategory asks the user to pick a category, reading from the
// command's input and writing to its output.
func PromptCategory(cmd *cobra.Command, c *faq.Catalog) (string, error) {
	items := CategoryItems(c)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Count | green }}",
		Inactive: "   {{ .Name }} {{ .Count | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Category",
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  categorySearcher(items),
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return items[i].Name, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
