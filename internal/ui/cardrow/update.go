package cardrow

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardrow/internal/deck"
	"github.com/llehouerou/cardrow/internal/order"
	"github.com/llehouerou/cardrow/internal/ui"
)

// frameMsg advances the spring animation by one frame.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages for the card row.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.motion || !m.animating {
			return m, nil
		}
		return m.stepFrame()

	case announceClearMsg:
		// Only the newest announcement's timer may clear the region.
		if msg.id == m.announcement.ID {
			m.announcement = Announcement{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	n := m.order.Len()
	if n == 0 {
		return m, nil
	}

	if !m.session.Idle() {
		if key.Matches(msg, m.keys.Cancel) {
			return m.cancelDrag()
		}
		if m.session.Source() != SourceKeyboard {
			// A pointer gesture owns the session; other keys are ignored.
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.MoveLeft):
			return m.moveDragTarget(-1)
		case key.Matches(msg, m.keys.MoveRight):
			return m.moveDragTarget(1)
		case key.Matches(msg, m.keys.Drop), key.Matches(msg, m.keys.PickUp):
			return m.commitDrag()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.FocusLeft):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, m.keys.FocusRight):
		if m.focus < n-1 {
			m.focus++
		}
	case key.Matches(msg, m.keys.PickUp):
		return m.startKeyboardDrag()
	case key.Matches(msg, m.keys.Reset):
		return m.resetOrder()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.session.Idle() {
			return m, nil
		}
		hit, ok := m.cardAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.focus = hit.pos
		m.session.armPointer(hit.id, hit.pos, msg.X, msg.Y, msg.X-hit.x, msg.Y-hit.y)
		return m, nil

	case tea.MouseActionMotion:
		if m.session.Idle() || m.session.Source() != SourcePointer {
			return m, nil
		}
		activated := m.session.trackPointer(msg.X, msg.Y)
		if !m.session.Dragging() {
			return m, nil
		}
		var cmds []tea.Cmd
		if activated {
			cmds = append(cmds, m.announce(pickedUpText(
				m.labelOf(m.session.ID()), m.session.Origin()+1, m.order.Len())))
		}
		// Push and target are recomputed on every move, independent of the
		// eventual commit.
		m.trackDrag()
		cmds = append(cmds, m.ensureAnimating())
		return m, tea.Batch(cmds...)

	case tea.MouseActionRelease:
		if m.session.Armed() {
			// The press never travelled far enough: a plain click. Focus
			// already moved on press; nothing to commit.
			m.session.clear()
			return m, nil
		}
		if !m.session.Dragging() || m.session.Source() != SourcePointer {
			return m, nil
		}
		if !m.validDropPoint(msg.X, msg.Y) {
			// No valid collision target under the release point.
			return m.cancelDrag()
		}
		return m.commitDrag()
	}

	return m, nil
}

func (m Model) startKeyboardDrag() (Model, tea.Cmd) {
	id := m.Focused()
	if id == "" {
		return m, nil
	}
	m.session.startKeyboard(id, m.focus)
	cmd := m.announce(pickedUpText(m.labelOf(id), m.focus+1, m.order.Len()))
	return m, tea.Batch(cmd, m.ensureAnimating())
}

func (m Model) moveDragTarget(delta int) (Model, tea.Cmd) {
	n := m.order.Len()
	if !m.session.moveTarget(delta, n) {
		return m, nil
	}
	cmd := m.announce(positionText(m.labelOf(m.session.ID()), m.session.Target()+1, n))
	return m, tea.Batch(cmd, m.ensureAnimating())
}

// commitDrag applies the working drop position to the order. Dropping a card
// back on its origin clears the session without mutating anything.
func (m Model) commitDrag() (Model, tea.Cmd) {
	id := m.session.ID()
	to := m.session.Target()
	m.session.clear()

	from := m.order.IndexOf(id)
	if id == "" || from < 0 {
		return m, m.ensureAnimating()
	}

	var cmds []tea.Cmd
	if to != from {
		m.order = m.order.Move(id, to)
		landed := m.order.IndexOf(id)
		cmds = append(cmds,
			m.announce(movedText(m.labelOf(id), from+1, landed+1)),
			orderChangedCmd(m.order.IDs()),
		)
	}
	m.focus = m.order.IndexOf(id)
	cmds = append(cmds, m.ensureAnimating())
	return m, tea.Batch(cmds...)
}

// cancelDrag aborts the session without mutating the order.
func (m Model) cancelDrag() (Model, tea.Cmd) {
	if m.session.Idle() {
		return m, nil
	}
	wasDragging := m.session.Dragging()
	m.session.clear()

	var cmds []tea.Cmd
	if wasDragging {
		cmds = append(cmds, m.announce(cancelledText))
	}
	cmds = append(cmds, m.ensureAnimating())
	return m, tea.Batch(cmds...)
}

// resetOrder restores the natural order of the current item set.
func (m Model) resetOrder() (Model, tea.Cmd) {
	natural := order.New(deck.IDs(m.items))
	if slices.Equal(natural.IDs(), m.order.IDs()) {
		return m, nil
	}
	focusedID := m.Focused()
	m.order = natural
	if focusedID != "" {
		m.focus = max(m.order.IndexOf(focusedID), 0)
	}
	return m, tea.Batch(
		m.announce(resetText),
		orderChangedCmd(m.order.IDs()),
		m.ensureAnimating(),
	)
}

// trackDrag recomputes the working drop index (nearest-center collision) and
// the per-sibling proximity push from the current pointer position.
func (m *Model) trackDrag() {
	n := m.order.Len()
	if n == 0 {
		return
	}
	px, _ := m.session.Pointer()
	grabDX, _ := m.session.Grab()
	centerX := px - grabDX + ui.CardWidth/2

	centers := SlotCenters(m.Width(), n, true)
	if idx := NearestSlot(centerX, centers); idx >= 0 {
		m.session.setTarget(idx)
	}

	preview := m.order.Move(m.session.ID(), m.session.Target())
	push := make(map[string]float64, n)
	for p, id := range preview.IDs() {
		if id == m.session.ID() {
			continue
		}
		if off := PushOffset(float64(centers[p]), float64(px)); off != 0 {
			push[id] = off
		}
	}
	m.session.setPush(push)
}

// validDropPoint reports whether a release at (x, y) lands on the row. A
// release far outside is treated as a cancellation, not a commit.
func (m Model) validDropPoint(x, y int) bool {
	margin := ui.CardHeight
	return x >= -margin && x < m.Width()+margin &&
		y >= -margin && y < m.canvasHeight()+margin
}

// ensureAnimating schedules the frame tick if it is not already running.
// With motion disabled, cards snap to their targets at render time instead.
func (m *Model) ensureAnimating() tea.Cmd {
	if !m.motion || m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// stepFrame advances every card's spring one frame toward its layout target.
// The tick stops once everything settles and no gesture is active.
func (m Model) stepFrame() (Model, tea.Cmd) {
	targets := m.layoutTargets()
	settled := true
	for id, lt := range targets {
		if m.pointerActive(id) {
			// The dragged card follows the pointer directly.
			m.field.snap(id, lt.x, lt.y)
			continue
		}
		m.field.step(id, lt.x, lt.y)
		if !m.field.settled(id, lt.x, lt.y) {
			settled = false
		}
	}
	if settled && m.session.Idle() {
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

// pointerActive reports whether id is the card of a pointer drag.
func (m Model) pointerActive(id string) bool {
	return m.session.Dragging() &&
		m.session.Source() == SourcePointer &&
		m.session.ID() == id
}
