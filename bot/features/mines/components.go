package mines

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"minesbot/models"
	"minesbot/service"
)

const cellCustomIDPrefix = "mines_cell_"

const gridWidth = 5

// BuildGridComponents renders a session as a 5x5 button grid. Discord caps a
// message at 5 action rows of 5 buttons, which is exactly one board; cashout
// therefore lives on the /cashout command instead of a 26th button.
func BuildGridComponents(session *models.Session) []discordgo.MessageComponent {
	view := service.BuildGridView(session)

	rows := make([]discordgo.MessageComponent, 0, gridWidth)
	for row := 0; row < gridWidth; row++ {
		buttons := make([]discordgo.MessageComponent, 0, gridWidth)
		for col := 0; col < gridWidth; col++ {
			idx := row*gridWidth + col
			buttons = append(buttons, cellButton(idx, view.Cells[idx], view.CashoutOffered))
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return rows
}

func cellButton(idx int, cell service.CellView, playing bool) discordgo.Button {
	button := discordgo.Button{
		CustomID: fmt.Sprintf("%s%d", cellCustomIDPrefix, idx),
	}

	switch cell {
	case service.CellGem:
		button.Label = "💎"
		button.Style = discordgo.SuccessButton
		button.Disabled = true
	case service.CellBombRevealed:
		button.Label = "💥"
		button.Style = discordgo.DangerButton
		button.Disabled = true
	case service.CellBombHidden:
		button.Label = "💣"
		button.Style = discordgo.DangerButton
		button.Disabled = true
	default:
		if playing {
			button.Label = "❓"
			button.Style = discordgo.SecondaryButton
		} else {
			button.Label = "🔲"
			button.Style = discordgo.SecondaryButton
			button.Disabled = true
		}
	}

	return button
}

// ParseCellIndex extracts the cell index from a grid button custom ID
func ParseCellIndex(customID string) (int, bool) {
	raw, ok := strings.CutPrefix(customID, cellCustomIDPrefix)
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return idx, true
}
