package disclosure

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Content wraps a panel's body. The child is part of the widget tree only
// while its panel is open; while closed it is detached entirely, so a closed
// panel renders nothing and does no layout work for its body. Visibility is
// derived purely from the shared state, never stored locally.
type Content struct {
	widget.BaseWidget

	scope  *panelScope
	child  fyne.CanvasObject
	holder *fyne.Container
}

// NewContent creates a content block for the given child. The child may be
// arbitrarily nested; the only requirement is that it can be attached and
// detached.
func NewContent(child fyne.CanvasObject) *Content {
	c := &Content{
		child:  child,
		holder: container.NewStack(),
	}
	c.ExtendBaseWidget(c)
	return c
}

// Expanded reports whether the child is currently attached.
func (c *Content) Expanded() bool {
	return len(c.holder.Objects) > 0
}

// syncVisibility attaches or detaches the child to match the shared state.
func (c *Content) syncVisibility() {
	open := c.scope != nil && c.scope.state.IsOpen(c.scope.id)
	if open == c.Expanded() {
		return
	}
	if open {
		c.holder.Objects = []fyne.CanvasObject{c.child}
	} else {
		c.holder.Objects = nil
	}
	c.holder.Refresh()
	c.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (c *Content) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.holder)
}
