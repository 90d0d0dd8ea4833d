package disclosure

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Group owns the shared OpenState for a set of panels and lays them out
// vertically. State is created with the group (all panels closed), mutated
// only by taps on panel titles or explicit Toggle calls, and discarded with
// the group. Two groups never share state.
type Group struct {
	widget.BaseWidget

	state  *OpenState
	panels []*Panel
	box    *fyne.Container
}

// NewGroup creates a group over the given panels and binds each of them to
// a fresh OpenState. Panel ids are taken on trust; see NewPanel.
func NewGroup(panels ...*Panel) *Group {
	g := &Group{
		state: NewOpenState(),
		box:   container.NewVBox(),
	}
	for _, p := range panels {
		g.attach(p)
	}
	g.ExtendBaseWidget(g)
	return g
}

// Attach binds one more panel to this group's shared state and appends it
// to the layout.
func (g *Group) Attach(p *Panel) {
	g.attach(p)
	g.box.Refresh()
}

func (g *Group) attach(p *Panel) {
	p.bind(g.state)
	g.panels = append(g.panels, p)
	g.box.Add(p)
}

// State exposes the group's shared state for programmatic toggling and
// observation.
func (g *Group) State() *OpenState {
	return g.state
}

// Panels returns the bound panels in layout order.
func (g *Group) Panels() []*Panel {
	return g.panels
}

// CreateRenderer implements fyne.Widget.
func (g *Group) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.box)
}
