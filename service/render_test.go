package service

import (
	"testing"

	"minesbot/models"

	"github.com/stretchr/testify/assert"
)

func playingSession(bombs, opened []int) *models.Session {
	return &models.Session{
		ID:        "s1",
		UserID:    1,
		Stake:     20,
		MineCount: len(bombs),
		Bombs:     bombs,
		Opened:    opened,
		Status:    models.SessionStatusPlaying,
	}
}

func TestBuildGridView_Playing(t *testing.T) {
	session := playingSession([]int{3, 12}, []int{0, 7})

	view := BuildGridView(session)

	assert.True(t, view.CashoutOffered)
	assert.Equal(t, CellGem, view.Cells[0])
	assert.Equal(t, CellGem, view.Cells[7])

	// Bombs stay hidden while the session is live
	assert.Equal(t, CellHidden, view.Cells[3])
	assert.Equal(t, CellHidden, view.Cells[12])
	assert.Equal(t, CellHidden, view.Cells[24])
}

func TestBuildGridView_Lost(t *testing.T) {
	session := playingSession([]int{3, 12}, []int{0, 7, 3})
	session.Status = models.SessionStatusLost

	view := BuildGridView(session)

	assert.False(t, view.CashoutOffered)
	assert.Equal(t, CellGem, view.Cells[0])
	assert.Equal(t, CellGem, view.Cells[7])

	// The opened bomb and the untouched bomb render differently
	assert.Equal(t, CellBombRevealed, view.Cells[3])
	assert.Equal(t, CellBombHidden, view.Cells[12])
	assert.Equal(t, CellHidden, view.Cells[24])
}

func TestBuildGridView_CashedOut(t *testing.T) {
	session := playingSession([]int{3}, []int{0})
	session.Status = models.SessionStatusCashedOut

	view := BuildGridView(session)

	assert.False(t, view.CashoutOffered)
	assert.Equal(t, CellGem, view.Cells[0])
	assert.Equal(t, CellBombHidden, view.Cells[3])
}
