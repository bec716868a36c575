package cardrow

import "github.com/charmbracelet/harmonica"

// animFPS is the frame rate of the spring animation tick.
const animFPS = 30

// settleEpsilon is how close position and velocity must be to the target for
// a card to count as at rest.
const settleEpsilon = 0.05

// motion is one card's animated position and velocity.
type motion struct {
	x, vx float64
	y, vy float64
}

// springField drives every card's rendered position toward its layout target
// with a shared spring. Retargeting needs no explicit cancellation: the next
// step simply pulls toward the new target, superseding the old motion.
type springField struct {
	spring harmonica.Spring
	cards  map[string]*motion
}

func newSpringField() springField {
	return springField{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), 7.0, 0.7),
		cards:  make(map[string]*motion),
	}
}

// step advances the card one frame toward (targetX, targetY) and returns the
// new position. Unknown cards start at the target (no fly-in from origin).
func (f *springField) step(id string, targetX, targetY float64) (x, y float64) {
	c, ok := f.cards[id]
	if !ok {
		c = &motion{x: targetX, y: targetY}
		f.cards[id] = c
		return c.x, c.y
	}
	c.x, c.vx = f.spring.Update(c.x, c.vx, targetX)
	c.y, c.vy = f.spring.Update(c.y, c.vy, targetY)
	return c.x, c.y
}

// snap places the card exactly at the target with zero velocity.
func (f *springField) snap(id string, x, y float64) {
	f.cards[id] = &motion{x: x, y: y}
}

// at returns the card's current animated position.
func (f *springField) at(id string) (x, y float64, ok bool) {
	c, found := f.cards[id]
	if !found {
		return 0, 0, false
	}
	return c.x, c.y, true
}

// settled reports whether the card is at rest on the target.
func (f *springField) settled(id string, targetX, targetY float64) bool {
	c, ok := f.cards[id]
	if !ok {
		return true
	}
	return near(c.x, targetX) && near(c.y, targetY) &&
		near(c.vx, 0) && near(c.vy, 0)
}

// prune drops spring state for cards no longer in the deck.
func (f *springField) prune(keep map[string]struct{}) {
	for id := range f.cards {
		if _, ok := keep[id]; !ok {
			delete(f.cards, id)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d > -settleEpsilon && d < settleEpsilon
}
