package disclosure

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Panel pairs a Title with a Content block under one id. A panel is inert
// until a Group binds it to shared state; titles and contents built for one
// panel can therefore be constructed anywhere and composed freely before the
// group exists.
type Panel struct {
	widget.BaseWidget

	id      PanelID
	title   *Title
	content *Content
	box     *fyne.Container
}

// NewPanel creates a panel with the given id, header and body. The id must
// be unique within the group the panel ends up in; the group does not check
// this, and duplicate ids produce inconsistent (though non-crashing)
// display.
func NewPanel(id PanelID, title *Title, content *Content) *Panel {
	p := &Panel{
		id:      id,
		title:   title,
		content: content,
	}
	p.box = container.NewVBox(p.title, p.content, widget.NewSeparator())
	p.ExtendBaseWidget(p)
	return p
}

// ID returns the panel's id.
func (p *Panel) ID() PanelID {
	return p.id
}

// bind injects the group's shared state into this panel's title and content
// and subscribes them to state changes. The same scope value is shared by
// both so they always agree on identity.
func (p *Panel) bind(state *OpenState) {
	scope := &panelScope{state: state, id: p.id}
	p.title.scope = scope
	p.content.scope = scope
	state.addListener(func(PanelID) {
		p.title.syncIndicator()
		p.content.syncVisibility()
	})
	p.title.syncIndicator()
	p.content.syncVisibility()
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.box)
}
