package cardrow

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardrow/internal/icons"
	"github.com/llehouerou/cardrow/internal/ui/testutil"
)

func TestViewShowsAllLabels(t *testing.T) {
	m := newTestRow("Alpha", "Beta", "Gamma")

	out := testutil.StripANSI(m.View())
	for _, label := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(out, label) {
			t.Errorf("view missing label %q", label)
		}
	}
}

func TestViewCurvedAtRest(t *testing.T) {
	m := newTestRow("A", "B", "C", "D", "E")
	out := m.View()

	// The middle card is lifted above the outer ones.
	edge := testutil.RowOf(out, "1/5")
	mid := testutil.RowOf(out, "3/5")
	if edge < 0 || mid < 0 {
		t.Fatalf("position footers not rendered:\n%s", testutil.StripANSI(out))
	}
	if mid >= edge {
		t.Errorf("middle card row %d not above edge card row %d", mid, edge)
	}
}

func TestViewPositionsFollowOrder(t *testing.T) {
	m := newTestRow("A", "B", "C")
	m = press(m, " ", "right", "right", "enter") // A to the end

	out := testutil.StripANSI(m.View())
	colA := testutil.ColumnOf(out, "A")
	colB := testutil.ColumnOf(out, "B")
	colC := testutil.ColumnOf(out, "C")
	if !(colB < colC && colC < colA) {
		t.Errorf("columns B=%d C=%d A=%d, want B < C < A", colB, colC, colA)
	}
}

func TestViewGhostSlotWhileDragging(t *testing.T) {
	m := newTestRow("A", "B", "C")
	out := testutil.StripANSI(m.View())
	marker := icons.Current().DeckSlot
	if strings.Contains(out, marker) {
		t.Fatalf("ghost slot rendered at rest")
	}

	m = press(m, " ", "right")
	out = testutil.StripANSI(m.View())
	if !strings.Contains(out, marker) {
		t.Error("ghost slot missing while dragging")
	}
}

func TestViewDragHandleOnFocusedCard(t *testing.T) {
	m := newTestRow("A", "B", "C")
	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, icons.Current().Handle) {
		t.Error("focused card should show the drag handle")
	}

	m.SetFocused(false)
	out = testutil.StripANSI(m.View())
	if strings.Contains(out, icons.Current().Handle) {
		t.Error("unfocused row should hide the drag handle")
	}
}

func TestViewFlattensDuringKeyboardDrag(t *testing.T) {
	m := newTestRow("A", "B", "C", "D", "E")
	m = press(m, "right", "right", " ") // pick up C

	cards := m.renderCards()
	base := m.baselineY()
	for _, c := range cards {
		if c.id == "C" {
			if c.y >= base {
				t.Errorf("dragged card y=%d not lifted above baseline %d", c.y, base)
			}
			continue
		}
		if c.y != base {
			t.Errorf("sibling %s y=%d, want flattened to %d", c.id, c.y, base)
		}
		if c.tilt != 0 {
			t.Errorf("sibling %s tilt=%v, want 0 while dragging", c.id, c.tilt)
		}
	}
}

func TestViewActiveCardDrawnLast(t *testing.T) {
	m := newTestRow("A", "B", "C", "D", "E")
	m = press(m, "right", " ") // pick up B

	cards := m.renderCards()
	if len(cards) == 0 {
		t.Fatal("no cards rendered")
	}
	if got := cards[len(cards)-1].id; got != "B" {
		t.Errorf("topmost card = %s, want the dragged card B", got)
	}
	if cards[len(cards)-1].state != stateActive {
		t.Error("dragged card not in active state")
	}
	for _, c := range cards[:len(cards)-1] {
		if c.state != stateDimmed {
			t.Errorf("sibling %s state = %v, want dimmed", c.id, c.state)
		}
	}
}

func TestViewPointerCardFollowsPointer(t *testing.T) {
	m := newTestRow("A", "B", "C", "D", "E")

	px, py := cardPoint(t, m, "C")
	m, _ = m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, px, py))
	m, _ = m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, px+15, py+1))

	cards := m.renderCards()
	for _, c := range cards {
		if c.id != "C" {
			continue
		}
		// The grab point stays under the pointer.
		wantX := px + 15 - 7 // pointer minus grab offset (card center)
		if c.x != wantX {
			t.Errorf("dragged card x = %d, want %d", c.x, wantX)
		}
	}
}

func TestViewZeroWidth(t *testing.T) {
	m := New(testItems("A"))
	if got := m.View(); got != "" {
		t.Errorf("zero-width view = %q, want empty", got)
	}
}
