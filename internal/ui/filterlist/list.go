package filterlist

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/soder/veld/internal/clock"
)

// DefaultDebounce is how long typing must pause before the search term is
// committed and the list refiltered.
const DefaultDebounce = 500 * time.Millisecond

// FilteredList renders the subset of a collection whose textual form
// contains the committed search term. The caller supplies the collection, a
// key extractor (unique per item; collisions give best-effort display, not a
// crash) and a render delegate producing one row per item. The widget owns
// everything else: the search entry, the debounce, the committed term, and a
// per-key cache that keeps row identity stable across refilters.
//
// Keystrokes never touch the committed term directly; they only reschedule
// the debounce, so a burst of typing filters once, not once per key.
type FilteredList[T any] struct {
	widget.BaseWidget

	keyOf  func(T) string
	render func(T) fyne.CanvasObject

	mu        sync.Mutex
	items     []T
	committed string
	closed    bool

	debounce *Debouncer
	delay    time.Duration
	dispatch func(func())

	search   *widget.Entry
	status   *widget.Label
	rows     *fyne.Container
	rendered map[string]fyne.CanvasObject
	content  *fyne.Container
}

// NewFilteredList creates a list over items using the real clock, with UI
// updates dispatched through fyne.Do (the debounce timer fires off the main
// goroutine).
func NewFilteredList[T any](items []T, keyOf func(T) string, render func(T) fyne.CanvasObject) *FilteredList[T] {
	return newFilteredList(clock.Real(), fyne.Do, items, keyOf, render)
}

// newFilteredList is the injectable constructor used by tests, which pass a
// fake clock and a direct-call dispatcher.
func newFilteredList[T any](clk clock.Clock, dispatch func(func()), items []T, keyOf func(T) string, render func(T) fyne.CanvasObject) *FilteredList[T] {
	l := &FilteredList[T]{
		keyOf:    keyOf,
		render:   render,
		items:    items,
		debounce: NewDebouncer(clk),
		delay:    DefaultDebounce,
		dispatch: dispatch,
		rendered: make(map[string]fyne.CanvasObject),
	}

	l.search = widget.NewEntry()
	l.search.SetPlaceHolder("Search...")
	l.search.OnChanged = l.OnInputChange

	l.status = widget.NewLabel("")
	l.rows = container.NewVBox()

	header := container.NewBorder(nil, nil, nil, l.status, l.search)
	l.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(l.rows))

	l.ExtendBaseWidget(l)
	l.rebuild()
	return l
}

// SetDebounceDelay overrides the debounce window. Zero is valid and still
// defers the commit to the next timer fire.
func (l *FilteredList[T]) SetDebounceDelay(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delay = d
}

// OnInputChange reschedules the debounce for the given raw text. The
// committed term is untouched until the window elapses uninterrupted.
func (l *FilteredList[T]) OnInputChange(raw string) {
	l.mu.Lock()
	delay := l.delay
	l.mu.Unlock()

	l.debounce.Schedule(delay, func() {
		l.dispatch(func() {
			l.commit(raw)
		})
	})
}

// CommittedTerm returns the text currently driving the filter.
func (l *FilteredList[T]) CommittedTerm() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.committed
}

// VisibleItems recomputes the filtered subsequence from the current items
// and committed term: case-insensitive substring match over each item's
// fmt serialization, input order preserved, empty term matching everything.
func (l *FilteredList[T]) VisibleItems() []T {
	l.mu.Lock()
	term := strings.ToLower(l.committed)
	items := l.items
	l.mu.Unlock()

	visible := make([]T, 0, len(items))
	for _, item := range items {
		if term == "" || strings.Contains(strings.ToLower(fmt.Sprint(item)), term) {
			visible = append(visible, item)
		}
	}
	return visible
}

// SetItems replaces the collection and refilters immediately. Cached rows
// whose keys are gone are dropped so a removed item cannot resurface stale.
func (l *FilteredList[T]) SetItems(items []T) {
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()

	keep := make(map[string]bool, len(items))
	for _, item := range items {
		keep[l.keyOf(item)] = true
	}
	for key := range l.rendered {
		if !keep[key] {
			delete(l.rendered, key)
		}
	}
	l.rebuild()
}

// Close cancels any pending debounce. Required before discarding the widget;
// a commit after Close is suppressed.
func (l *FilteredList[T]) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.debounce.Cancel()
}

// commit is the debounce action: it moves the raw text into the committed
// term and refilters. Runs on the UI goroutine via the dispatcher.
func (l *FilteredList[T]) commit(term string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.committed = term
	l.mu.Unlock()
	l.rebuild()
}

// rebuild rerenders the visible rows. The render delegate runs once per key;
// subsequent rebuilds reuse the cached object so row identity is stable for
// unchanged items.
func (l *FilteredList[T]) rebuild() {
	visible := l.VisibleItems()

	objects := make([]fyne.CanvasObject, 0, len(visible))
	for _, item := range visible {
		key := l.keyOf(item)
		obj, ok := l.rendered[key]
		if !ok {
			obj = l.render(item)
			l.rendered[key] = obj
		}
		objects = append(objects, obj)
	}
	l.rows.Objects = objects
	l.rows.Refresh()

	l.mu.Lock()
	total := len(l.items)
	filtered := l.committed != ""
	l.mu.Unlock()
	if filtered {
		l.status.SetText(fmt.Sprintf("%d of %d", len(visible), total))
	} else {
		l.status.SetText(fmt.Sprintf("%d items", total))
	}
}

// CreateRenderer implements fyne.Widget.
func (l *FilteredList[T]) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.content)
}
