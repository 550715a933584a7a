package service

import (
	"minesbot/models"
)

// CellView is the displayable state of a single board cell
type CellView int

const (
	// CellHidden is an untouched cell
	CellHidden CellView = iota
	// CellGem is a revealed safe cell
	CellGem
	// CellBombRevealed is a bomb the player opened
	CellBombRevealed
	// CellBombHidden is an untouched bomb, exposed only once the session has ended
	CellBombHidden
)

// GridView is the rendering contract handed to the transport layer: one view
// state per cell plus whether a cashout action is currently offered.
type GridView struct {
	Cells          [models.GridSize]CellView
	CashoutOffered bool
}

// BuildGridView converts a session into its displayable grid. It is a pure
// function over the session: bombs stay hidden while the session is playing
// and are exposed once it ends.
func BuildGridView(s *models.Session) GridView {
	view := GridView{CashoutOffered: s.IsPlaying()}

	for i := 0; i < models.GridSize; i++ {
		switch {
		case s.IsOpened(i) && s.IsBomb(i):
			view.Cells[i] = CellBombRevealed
		case s.IsOpened(i):
			view.Cells[i] = CellGem
		case s.IsBomb(i) && !s.IsPlaying():
			view.Cells[i] = CellBombHidden
		default:
			view.Cells[i] = CellHidden
		}
	}

	return view
}
