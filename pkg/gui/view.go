// Package gui renders the FAQ accordion in a fyne desktop window. Like the
// terminal UI it reads every open/closed decision from an
// accordion.Controller and rebuilds its rows after each change.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/glyph"
	"tableflip.dev/faq/pkg/logging"
)

const (
	appID    = "dev.tableflip.faq"
	title    = "FAQ Accordion"
	allLabel = "All Categories"
)

// Options configures the desktop window.
type Options struct {
	Policy accordion.Policy
	Logger *zap.Logger
}

// View holds the widgets bound to one controller.
type View struct {
	ctrl *accordion.Controller

	categoryButtons map[string]*widget.Button
	stats           *widget.Label
	status          *widget.Label
	rows            *fyne.Container
	headers         []*widget.Button
	answers         []*fyne.Container

	content fyne.CanvasObject
}

// NewView builds the widget tree for ctrl.
func NewView(ctrl *accordion.Controller) *View {
	v := &View{
		ctrl:            ctrl,
		categoryButtons: map[string]*widget.Button{},
		stats:           widget.NewLabel(""),
		status:          widget.NewLabel(""),
		rows:            container.NewVBox(),
	}

	categories := container.NewHBox()
	for _, c := range ctrl.Catalog().CategoryOptions() {
		category := c
		label := category
		if category == faq.AllCategories {
			label = allLabel
		}
		btn := widget.NewButton(label, func() { v.selectCategory(category) })
		v.categoryButtons[category] = btn
		categories.Add(btn)
	}

	actions := container.NewHBox(
		widget.NewButtonWithIcon("Expand All", theme.MoveDownIcon(), func() {
			v.ctrl.ExpandAll()
			v.Refresh()
		}),
		widget.NewButtonWithIcon("Collapse All", theme.MoveUpIcon(), func() {
			v.ctrl.CollapseAll()
			v.Refresh()
		}),
	)

	header := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	top := container.NewVBox(header, v.stats, container.NewHScroll(categories), actions, widget.NewSeparator())
	v.content = container.NewBorder(top, v.status, nil, nil, container.NewVScroll(v.rows))
	v.Refresh()
	return v
}

// Content returns the root canvas object.
func (v *View) Content() fyne.CanvasObject { return v.content }

func (v *View) selectCategory(category string) {
	v.ctrl.SelectCategory(category)
	v.Refresh()
}

func (v *View) toggle(position int) {
	v.ctrl.Toggle(position)
	v.Refresh()
}

// Refresh rebuilds the rows and labels from the controller.
func (v *View) Refresh() {
	s := v.ctrl.Stats()
	v.stats.SetText(fmt.Sprintf("Total Questions: %d   Categories: %d   Filtered Items: %d",
		s.Total, s.Categories, s.Filtered))

	for category, btn := range v.categoryButtons {
		btn.Importance = widget.MediumImportance
		if category == v.ctrl.Category() {
			btn.Importance = widget.HighImportance
		}
		btn.Refresh()
	}

	expanded := "None"
	if _, ok := v.ctrl.ExpandedIndex(); ok {
		expanded = "Yes"
	}
	category := v.ctrl.Category()
	if category == faq.AllCategories {
		category = allLabel
	}
	v.status.SetText(fmt.Sprintf("Active Category: %s · Expanded: %s · policy: %s",
		category, expanded, v.ctrl.Policy()))

	v.rebuildRows()
}

func (v *View) rebuildRows() {
	entries := v.ctrl.Filtered()
	v.headers = v.headers[:0]
	v.answers = v.answers[:0]
	objects := make([]fyne.CanvasObject, 0, len(entries)+1)

	if len(entries) == 0 {
		objects = append(objects,
			widget.NewLabelWithStyle("No questions found for this category", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Try selecting a different category or check back later!", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		)
	}

	for i, e := range entries {
		position := i
		open := v.ctrl.Expanded(i)

		icon := theme.MenuExpandIcon()
		if open {
			icon = theme.MenuDropDownIcon()
		}
		text := fmt.Sprintf("%s  %s   [%s]", glyph.For(e.Icon), e.Question, e.Category)
		header := widget.NewButtonWithIcon(text, icon, func() { v.toggle(position) })
		header.Alignment = widget.ButtonAlignLeading
		if open {
			header.Importance = widget.HighImportance
		} else {
			header.Importance = widget.LowImportance
		}

		answer := widget.NewLabel(e.Answer)
		answer.Wrapping = fyne.TextWrapWord
		body := container.NewVBox(answer)
		if tags := e.HashTags(); tags != "" {
			body.Add(widget.NewLabelWithStyle(tags, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
		}
		if !open {
			body.Hide()
		}

		v.headers = append(v.headers, header)
		v.answers = append(v.answers, body)
		objects = append(objects, container.NewVBox(header, body))
	}

	v.rows.Objects = objects
	v.rows.Refresh()
}

// Run opens the desktop window and blocks until it is closed.
func Run(catalog *faq.Catalog, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctrl := accordion.New(catalog,
		accordion.WithPolicy(opts.Policy),
		accordion.WithObserver(logging.Observer(logger)),
	)

	a := fyneapp.NewWithID(appID)
	w := a.NewWindow(title)
	w.SetContent(NewView(ctrl).Content())
	w.Resize(fyne.NewSize(760, 640))
	logger.Info("opening desktop window", zap.Int("entries", catalog.Len()))
	w.ShowAndRun()
	return nil
}
