package models

import (
	"time"
)

// GridSize is the number of cells on the mines board (5x5).
const GridSize = 25

// SessionStatus represents the state of a game session
type SessionStatus string

const (
	SessionStatusPlaying   SessionStatus = "playing"
	SessionStatusLost      SessionStatus = "lost"
	SessionStatusCashedOut SessionStatus = "cashed_out"
)

// Session represents one active mines wager for a user. Bombs and Opened
// hold cell indices in [0, GridSize). While the session is playing, Opened
// never contains a bomb index; after a loss it contains the bomb that was hit.
type Session struct {
	ID        string        `json:"id"`
	UserID    int64         `json:"user_id"`
	Stake     int64         `json:"stake"`
	MineCount int           `json:"mine_count"`
	Bombs     []int         `json:"bombs"`
	Opened    []int         `json:"opened"`
	Status    SessionStatus `json:"status"`
	StartedAt time.Time     `json:"started_at"`
}

// IsPlaying reports whether the session still accepts reveals and cashout
func (s *Session) IsPlaying() bool {
	return s.Status == SessionStatusPlaying
}

// IsBomb reports whether the given cell index holds a bomb
func (s *Session) IsBomb(index int) bool {
	for _, b := range s.Bombs {
		if b == index {
			return true
		}
	}
	return false
}

// IsOpened reports whether the given cell index has been revealed
func (s *Session) IsOpened(index int) bool {
	for _, o := range s.Opened {
		if o == index {
			return true
		}
	}
	return false
}

// Gems returns the number of revealed safe cells
func (s *Session) Gems() int {
	gems := 0
	for _, o := range s.Opened {
		if !s.IsBomb(o) {
			gems++
		}
	}
	return gems
}
