package cardrow

// Phase is the state of the drag session controller.
type Phase int

const (
	// PhaseIdle means no gesture is in progress.
	PhaseIdle Phase = iota
	// PhaseArmed means a pointer press landed on a card but has not yet
	// travelled far enough to count as a drag.
	PhaseArmed
	// PhaseDragging means a card is actively being dragged.
	PhaseDragging
)

// Source identifies which input modality owns the session.
type Source int

const (
	SourceNone Source = iota
	SourcePointer
	SourceKeyboard
)

// Session is the transient state of an in-progress reorder gesture. It is
// owned exclusively by the update loop; the layout code only reads it.
// Exactly one session exists at a time; starting a new gesture while one is
// active is rejected by the input handling.
type Session struct {
	phase  Phase
	source Source

	id     string
	origin int // position of the card when picked up
	target int // current working drop position

	// Pointer bookkeeping.
	startX, startY     int // press position, for the activation threshold
	pointerX, pointerY int
	grabDX, grabDY     int // press offset within the card

	// push holds the proximity displacement per sibling id, recomputed on
	// every pointer move.
	push map[string]float64
}

// Idle reports whether no gesture is in progress.
func (s Session) Idle() bool { return s.phase == PhaseIdle }

// Armed reports whether a press is waiting for the activation threshold.
func (s Session) Armed() bool { return s.phase == PhaseArmed }

// Dragging reports whether a card is actively being dragged.
func (s Session) Dragging() bool { return s.phase == PhaseDragging }

// ID returns the id of the card owning the session, or "" when idle.
func (s Session) ID() string { return s.id }

// Origin returns the card's position at pick-up.
func (s Session) Origin() int { return s.origin }

// Target returns the current working drop position.
func (s Session) Target() int { return s.target }

// Source returns the input modality that owns the session.
func (s Session) Source() Source { return s.source }

// Pointer returns the last tracked pointer position.
func (s Session) Pointer() (x, y int) { return s.pointerX, s.pointerY }

// Grab returns the press offset within the dragged card.
func (s Session) Grab() (dx, dy int) { return s.grabDX, s.grabDY }

// Push returns the proximity displacement for a sibling id.
func (s Session) Push(id string) float64 { return s.push[id] }

// armPointer records a pointer press on a card. The session stays armed until
// the pointer travels past the activation threshold.
func (s *Session) armPointer(id string, origin, x, y, grabDX, grabDY int) {
	if !s.Idle() {
		return
	}
	*s = Session{
		phase:    PhaseArmed,
		source:   SourcePointer,
		id:       id,
		origin:   origin,
		target:   origin,
		startX:   x,
		startY:   y,
		pointerX: x,
		pointerY: y,
		grabDX:   grabDX,
		grabDY:   grabDY,
	}
}

// startKeyboard begins a keyboard drag immediately; there is no activation
// threshold for the pick-up key.
func (s *Session) startKeyboard(id string, origin int) {
	if !s.Idle() {
		return
	}
	*s = Session{
		phase:  PhaseDragging,
		source: SourceKeyboard,
		id:     id,
		origin: origin,
		target: origin,
	}
}

// trackPointer updates the pointer position and reports whether this update
// activated an armed session into a drag.
func (s *Session) trackPointer(x, y int) (activated bool) {
	if s.Idle() || s.source != SourcePointer {
		return false
	}
	s.pointerX = x
	s.pointerY = y
	if s.phase == PhaseArmed {
		dx := x - s.startX
		dy := y - s.startY
		if dx*dx+dy*dy >= activationDistance*activationDistance {
			s.phase = PhaseDragging
			return true
		}
	}
	return false
}

// moveTarget shifts the working drop position by delta, clamped to [0, n-1].
func (s *Session) moveTarget(delta, n int) bool {
	if !s.Dragging() || n == 0 {
		return false
	}
	next := min(max(s.target+delta, 0), n-1)
	if next == s.target {
		return false
	}
	s.target = next
	return true
}

// setTarget sets the working drop position directly (pointer collision).
func (s *Session) setTarget(idx int) {
	if s.Dragging() && idx >= 0 {
		s.target = idx
	}
}

// setPush replaces the proximity displacement map.
func (s *Session) setPush(push map[string]float64) {
	s.push = push
}

// clear ends the session, whatever its phase.
func (s *Session) clear() {
	*s = Session{}
}
