// Package ui assembles the main window: a field guide tab built on the
// disclosure group and an explorer tab built on the filtered delegate list.
package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/soder/veld/internal/catalog"
	"github.com/soder/veld/internal/ui/disclosure"
	"github.com/soder/veld/internal/ui/filterlist"
)

// MainWindow owns the window layout and the two feature widgets.
type MainWindow struct {
	window fyne.Window
	logger *slog.Logger

	guide    *disclosure.Group
	explorer *filterlist.FilteredList[catalog.Place]
}

// NewMainWindow builds the window over the given catalog. The explorer's
// pending debounce is cancelled when the window closes.
func NewMainWindow(fyneApp fyne.App, cat *catalog.Catalog, logger *slog.Logger) *MainWindow {
	window := fyneApp.NewWindow("Veld - Field Guide")

	mw := &MainWindow{
		window:   window,
		logger:   logger,
		guide:    buildGuide(cat.Sections),
		explorer: buildExplorer(cat.Places),
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("Guide", container.NewVScroll(mw.guide)),
		container.NewTabItem("Explore", mw.explorer),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	window.SetContent(tabs)
	window.Resize(fyne.NewSize(720, 560))
	window.SetOnClosed(func() {
		mw.explorer.Close()
		logger.Info("window closed")
	})

	return mw
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Guide returns the disclosure group for programmatic control.
func (w *MainWindow) Guide() *disclosure.Group {
	return w.guide
}

// Explorer returns the filtered place list.
func (w *MainWindow) Explorer() *filterlist.FilteredList[catalog.Place] {
	return w.explorer
}

// buildGuide turns catalog sections into one disclosure panel each, keyed by
// section id.
func buildGuide(sections []catalog.Section) *disclosure.Group {
	panels := make([]*disclosure.Panel, 0, len(sections))
	for _, s := range sections {
		body := widget.NewLabel(s.Body)
		body.Wrapping = fyne.TextWrapWord
		panels = append(panels, disclosure.NewPanel(
			disclosure.PanelID(s.ID),
			disclosure.NewTitle(s.Title),
			disclosure.NewContent(body),
		))
	}
	return disclosure.NewGroup(panels...)
}

// buildExplorer turns catalog places into a searchable list. Place ids key
// the rows; Place.String drives the free-text match.
func buildExplorer(places []catalog.Place) *filterlist.FilteredList[catalog.Place] {
	return filterlist.NewFilteredList(places,
		func(p catalog.Place) string { return p.ID },
		func(p catalog.Place) fyne.CanvasObject {
			name := widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			region := widget.NewLabelWithStyle(p.Region, fyne.TextAlignTrailing, fyne.TextStyle{Italic: true})
			blurb := widget.NewLabel(p.Blurb)
			blurb.Wrapping = fyne.TextWrapWord

			return container.NewVBox(
				container.NewBorder(nil, nil, nil, region, name),
				blurb,
				widget.NewSeparator(),
			)
		},
	)
}
