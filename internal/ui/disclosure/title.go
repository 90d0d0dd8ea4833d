package disclosure

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Title is the tappable header of a panel. It has no knowledge of which
// panel it belongs to until the group binds it; after that, one tap performs
// exactly one Toggle of the shared state.
type Title struct {
	widget.BaseWidget

	scope *panelScope
	label *widget.Label
	icon  *widget.Icon
}

var _ fyne.Tappable = (*Title)(nil)

// NewTitle creates a panel header with the given text. The chevron icon
// tracks open state once the title is part of a bound panel.
func NewTitle(text string) *Title {
	t := &Title{
		label: widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		icon:  widget.NewIcon(theme.MenuExpandIcon()),
	}
	t.ExtendBaseWidget(t)
	return t
}

// Tapped toggles this panel in the group's shared state. Unbound titles
// ignore taps.
func (t *Title) Tapped(_ *fyne.PointEvent) {
	if t.scope == nil {
		return
	}
	t.scope.state.Toggle(t.scope.id)
}

// Text returns the header text.
func (t *Title) Text() string {
	return t.label.Text
}

// syncIndicator points the chevron right when closed, down when open.
func (t *Title) syncIndicator() {
	if t.scope != nil && t.scope.state.IsOpen(t.scope.id) {
		t.icon.SetResource(theme.MenuDropDownIcon())
		return
	}
	t.icon.SetResource(theme.MenuExpandIcon())
}

// CreateRenderer implements fyne.Widget.
func (t *Title) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, t.icon, nil, t.label)
	return widget.NewSimpleRenderer(row)
}
