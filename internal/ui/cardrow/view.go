package cardrow

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardrow/internal/deck"
	"github.com/llehouerou/cardrow/internal/icons"
	"github.com/llehouerou/cardrow/internal/ui"
	"github.com/llehouerou/cardrow/internal/ui/overlay"
	"github.com/llehouerou/cardrow/internal/ui/render"
)

// cardState selects the visual treatment of a card.
type cardState int

const (
	stateNormal cardState = iota
	stateFocused
	stateActive // the dragged card
	stateDimmed // siblings while a drag is active
)

// layoutTarget is a card's goal position for the current frame.
type layoutTarget struct {
	x, y float64
	tilt float64
	pos  int // visual position within the (preview) order
}

// renderCard is a card resolved to concrete canvas coordinates.
type renderCard struct {
	item  deck.Item
	id    string
	pos   int
	x, y  int
	tilt  float64
	state cardState
}

// canvasHeight returns the total height of the widget in rows: enough for a
// card at the baseline plus the deepest curve lift.
func (m Model) canvasHeight() int {
	return ui.CardHeight + int(curveAmpMax) + 1
}

func (m Model) baselineY() int {
	return m.canvasHeight() - ui.CardHeight
}

// layoutTargets computes every card's goal position from the order and the
// drag session. It is a pure function of the model: any frame can be
// recomputed from scratch.
func (m Model) layoutTargets() map[string]layoutTarget {
	n := m.order.Len()
	if n == 0 {
		return nil
	}

	dragging := m.session.Dragging()
	seq := m.order
	if dragging {
		// Siblings preview the insertion while the drag is in flight.
		seq = m.order.Move(m.session.ID(), m.session.Target())
	}

	xs := SlotXs(m.Width(), n, dragging)
	base := float64(m.baselineY())

	targets := make(map[string]layoutTarget, n)
	for p, id := range seq.IDs() {
		lt := layoutTarget{pos: p}
		switch {
		case dragging && id == m.session.ID():
			if m.session.Source() == SourcePointer {
				// The active card ignores curve shaping and follows the
				// pointer delta directly.
				px, py := m.session.Pointer()
				dx, dy := m.session.Grab()
				lt.x = float64(px - dx)
				lt.y = float64(py - dy)
			} else {
				lt.x = float64(xs[p])
				lt.y = base - keyboardLift
			}
		case dragging:
			// Flattened target strip, displaced by proximity push.
			lt.x = float64(xs[p]) + m.session.Push(id)
			lt.y = base
		default:
			lt.x = float64(xs[p])
			lt.y = base + CurveOffset(p, n)
			lt.tilt = Rotation(p, n)
		}
		targets[id] = lt
	}
	return targets
}

// renderCards resolves all cards to canvas coordinates, in draw order
// (bottom first). The dragged or focused card is drawn last, on top.
func (m Model) renderCards() []renderCard {
	targets := m.layoutTargets()
	if len(targets) == 0 {
		return nil
	}

	seq := m.order
	if m.session.Dragging() {
		seq = m.order.Move(m.session.ID(), m.session.Target())
	}
	ids := seq.IDs()

	topID := m.Focused()
	if m.session.Dragging() {
		topID = m.session.ID()
	}

	out := make([]renderCard, 0, len(ids))
	var top *renderCard
	for _, id := range ids {
		lt := targets[id]
		item, ok := m.itemByID(id)
		if !ok {
			continue
		}
		rc := renderCard{
			item:  item,
			id:    id,
			pos:   lt.pos,
			x:     int(math.Round(m.animatedX(id, lt))),
			y:     int(math.Round(m.animatedY(id, lt))),
			tilt:  lt.tilt,
			state: m.stateOf(id),
		}
		if id == topID {
			c := rc
			top = &c
			continue
		}
		out = append(out, rc)
	}
	if top != nil {
		out = append(out, *top)
	}
	return out
}

func (m Model) animatedX(id string, lt layoutTarget) float64 {
	if !m.motion || m.pointerActive(id) {
		return lt.x
	}
	if x, _, ok := m.field.at(id); ok {
		return x
	}
	return lt.x
}

func (m Model) animatedY(id string, lt layoutTarget) float64 {
	if !m.motion || m.pointerActive(id) {
		return lt.y
	}
	if _, y, ok := m.field.at(id); ok {
		return y
	}
	return lt.y
}

func (m Model) stateOf(id string) cardState {
	if m.session.Dragging() {
		if id == m.session.ID() {
			return stateActive
		}
		return stateDimmed
	}
	if m.IsFocused() && id == m.Focused() {
		return stateFocused
	}
	return stateNormal
}

// cardHit is the result of a pointer hit test.
type cardHit struct {
	id   string
	pos  int
	x, y int
}

// cardAt returns the topmost card under (x, y).
func (m Model) cardAt(x, y int) (cardHit, bool) {
	cards := m.renderCards()
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		if x >= c.x && x < c.x+ui.CardWidth && y >= c.y && y < c.y+ui.CardHeight {
			return cardHit{id: c.id, pos: c.pos, x: c.x, y: c.y}, true
		}
	}
	return cardHit{}, false
}

// View renders the card row.
func (m Model) View() string {
	width := m.Width()
	if width == 0 || m.order.Len() == 0 {
		return ""
	}

	canvas := overlay.NewCanvas(width, m.canvasHeight())

	if m.session.Dragging() {
		// Drop slot outline first, underneath everything.
		xs := SlotXs(width, m.order.Len(), true)
		canvas.Place(m.renderGhost(), xs[m.session.Target()], m.baselineY())
	}

	n := m.order.Len()
	for _, c := range m.renderCards() {
		canvas.Place(m.renderCardBlock(c, n), c.x, c.y)
	}

	return canvas.String()
}

// renderCardBlock renders one card as a bordered block.
func (m Model) renderCardBlock(c renderCard, n int) string {
	innerW := ui.CardWidth - ui.BorderWidth

	icon := c.item.Icon
	if icon == "" {
		icon = " "
	}
	iconRow := lipgloss.PlaceHorizontal(innerW, tiltAlign(c.tilt), icon)

	label := render.Truncate(c.item.Label, innerW)
	var labelRow string
	if c.state == stateDimmed {
		labelRow = m.st.dimText.Render(render.Center(label, innerW))
	} else {
		labelRow = centerStyled(c.item.Gradient.RenderBold(label), lipgloss.Width(label), innerW)
	}

	handle := " "
	switch c.state {
	case stateFocused:
		handle = m.st.handle.Render(icons.Current().Handle)
	case stateActive:
		handle = m.st.handle.Render(icons.Current().Grabbed)
	}
	// The trailing space keeps the position clear of the next card's border
	// when cards overlap.
	footer := m.st.footer.Render(render.Row(handle, fmt.Sprintf("%d/%d ", c.pos+1, n), innerW))

	content := strings.Join([]string{
		iconRow,
		labelRow,
		render.EmptyLine(innerW),
		footer,
	}, "\n")

	return m.borderFor(c.state).Render(content)
}

func (m Model) borderFor(s cardState) lipgloss.Style {
	switch s {
	case stateActive:
		return m.st.active
	case stateFocused:
		return m.st.focused
	case stateDimmed:
		return m.st.normal
	default:
		return m.st.normal
	}
}

// renderGhost renders the empty drop slot left for the dragged card.
func (m Model) renderGhost() string {
	innerW := ui.CardWidth - ui.BorderWidth
	marker := m.st.slot.Render(render.Center(icons.Current().DeckSlot, innerW))
	rows := []string{
		render.EmptyLine(innerW),
		marker,
		render.EmptyLine(innerW),
		render.EmptyLine(innerW),
	}
	return m.st.ghost.Render(strings.Join(rows, "\n"))
}

// tiltAlign maps a tilt in degrees to the icon alignment: outer cards lean
// their art toward the edge of the row.
func tiltAlign(tilt float64) lipgloss.Position {
	switch {
	case tilt < -2:
		return lipgloss.Left
	case tilt > 2:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// centerStyled centers an already-styled string of known visible width.
func centerStyled(s string, visibleWidth, width int) string {
	if visibleWidth >= width {
		return s
	}
	left := (width - visibleWidth) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-visibleWidth-left)
}
