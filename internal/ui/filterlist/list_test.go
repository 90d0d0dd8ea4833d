package filterlist

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soder/veld/internal/clock"
)

type place struct {
	ID   int
	Name string
}

func placeKey(p place) string { return fmt.Sprintf("place-%d", p.ID) }

var rivers = []place{
	{ID: 1, Name: "Amazon River"},
	{ID: 2, Name: "African Savanna"},
}

// testList builds a FilteredList with a fake clock, a direct-call dispatcher
// that counts commits, and a per-key render counter.
func testList(items []place) (*FilteredList[place], *clock.FakeClock, *int, map[string]int) {
	clk := clock.Fake(time.Unix(0, 0))
	commits := 0
	renders := make(map[string]int)

	l := newFilteredList(clk,
		func(fn func()) {
			commits++
			fn()
		},
		items,
		placeKey,
		func(p place) fyne.CanvasObject {
			renders[placeKey(p)]++
			return widget.NewLabel(p.Name)
		},
	)
	return l, clk, &commits, renders
}

func TestFilteredList_DebounceCoalescesKeystrokes(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, clk, commits, _ := testList(rivers)

	// Keystrokes at t=0, 100ms, 200ms with a 500ms window.
	l.search.SetText("h")
	clk.Advance(100 * time.Millisecond)
	l.search.SetText("he")
	clk.Advance(100 * time.Millisecond)
	l.search.SetText("hel")

	// t=600ms: the last keystroke's window has not elapsed.
	clk.Advance(400 * time.Millisecond)
	assert.Equal(t, 0, *commits, "no intermediate commit may be observable")
	assert.Equal(t, "", l.CommittedTerm())

	// t=700ms: exactly one commit, with the final text.
	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, *commits)
	assert.Equal(t, "hel", l.CommittedTerm())
}

func TestFilteredList_FilterCorrectness(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tests := []struct {
		name     string
		term     string
		expected []int
	}{
		{
			name:     "empty term matches everything in order",
			term:     "",
			expected: []int{1, 2},
		},
		{
			name:     "substring matches one item",
			term:     "ama",
			expected: []int{1},
		},
		{
			name:     "match is case-insensitive",
			term:     "RIVER",
			expected: []int{1},
		},
		{
			name:     "prefix of one name matches only it",
			term:     "af",
			expected: []int{2},
		},
		{
			name:     "no match yields empty result",
			term:     "tundra",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, clk, _, _ := testList(rivers)
			l.search.SetText(tt.term)
			clk.Advance(DefaultDebounce)

			var ids []int
			for _, p := range l.VisibleItems() {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilteredList_RowsFollowCommittedTerm(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, clk, _, _ := testList(rivers)
	require.Len(t, l.rows.Objects, 2)

	l.search.SetText("ama")
	clk.Advance(DefaultDebounce)

	require.Len(t, l.rows.Objects, 1)
	assert.Equal(t, "Amazon River", l.rows.Objects[0].(*widget.Label).Text)
	assert.Equal(t, "1 of 2", l.status.Text)
}

func TestFilteredList_KeyStabilityAcrossRefilters(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, clk, _, renders := testList(rivers)
	first := l.rows.Objects[0]

	// Filter Amazon out, then bring it back.
	l.search.SetText("savanna")
	clk.Advance(DefaultDebounce)
	l.search.SetText("")
	clk.Advance(DefaultDebounce)

	require.Len(t, l.rows.Objects, 2)
	assert.Same(t, first, l.rows.Objects[0], "row identity must be stable for an unchanged item")
	assert.Equal(t, 1, renders["place-1"], "render delegate runs once per key")
	assert.Equal(t, 1, renders["place-2"])
}

func TestFilteredList_VisibleItemsIsDeterministic(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, clk, _, _ := testList(rivers)
	l.search.SetText("a")
	clk.Advance(DefaultDebounce)

	assert.Equal(t, l.VisibleItems(), l.VisibleItems())
}

func TestFilteredList_CloseSuppressesPendingCommit(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, clk, commits, _ := testList(rivers)

	l.search.SetText("ama")
	l.Close()
	clk.Advance(time.Second)

	assert.Equal(t, 0, *commits, "no commit may run after teardown")
	assert.Equal(t, "", l.CommittedTerm())
}

func TestFilteredList_SetItemsDropsStaleRows(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, _, _, renders := testList(rivers)

	l.SetItems([]place{{ID: 2, Name: "African Savanna"}})
	require.Len(t, l.rows.Objects, 1)
	assert.Equal(t, "African Savanna", l.rows.Objects[0].(*widget.Label).Text)

	// Re-adding the removed item renders it afresh.
	l.SetItems(rivers)
	require.Len(t, l.rows.Objects, 2)
	assert.Equal(t, 2, renders["place-1"])
}

func TestFilteredList_ZeroDelayStillDefers(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, clk, commits, _ := testList(rivers)
	l.SetDebounceDelay(0)

	l.search.SetText("ama")
	assert.Equal(t, 0, *commits, "commit must not run inside the keystroke")

	clk.Advance(0)
	assert.Equal(t, 1, *commits)
	assert.Equal(t, "ama", l.CommittedTerm())
}

func TestFilteredList_StatusCountsUnfiltered(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, _, _, _ := testList(rivers)
	assert.Equal(t, "2 items", l.status.Text)
}

func TestFilteredList_CreateRenderer(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	l, _, _, _ := testList(rivers)
	assert.NotNil(t, l.CreateRenderer())
}
