package cardrow

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AnnounceDuration is how long an announcement stays in the live region
// before it self-clears.
const AnnounceDuration = 1500 * time.Millisecond

// Announcement is the transient narration string for assistive output.
type Announcement struct {
	ID   int64
	Text string
}

// announceClearMsg clears a specific announcement after its delay. The id
// match means a newer announcement resets the timer instead of stacking.
type announceClearMsg struct {
	id int64
}

func announceClearCmd(id int64) tea.Cmd {
	return tea.Tick(AnnounceDuration, func(time.Time) tea.Msg {
		return announceClearMsg{id: id}
	})
}

// announce replaces the current announcement and schedules its expiry.
func (m *Model) announce(text string) tea.Cmd {
	m.announceSeq++
	m.announcement = Announcement{ID: m.announceSeq, Text: text}
	return announceClearCmd(m.announceSeq)
}

func pickedUpText(label string, pos, n int) string {
	return fmt.Sprintf("Picked up %s. Position %d of %d.", label, pos, n)
}

func positionText(label string, pos, n int) string {
	return fmt.Sprintf("%s. Position %d of %d.", label, pos, n)
}

func movedText(label string, from, to int) string {
	return fmt.Sprintf("Moved %s from position %d to %d.", label, from, to)
}

const cancelledText = "Reorder cancelled."

const resetText = "Order reset."
