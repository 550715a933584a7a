package mines

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"minesbot/service"
)

// Feature owns the /mine and /cashout commands and the board button grid
type Feature struct {
	gameService service.GameService
	userService service.UserService
}

// New creates a new mines feature instance
func New(gameService service.GameService, userService service.UserService) *Feature {
	return &Feature{
		gameService: gameService,
		userService: userService,
	}
}

// HandleMineCommand handles the /mine command
func (f *Feature) HandleMineCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleMine(s, i)
}

// HandleCashoutCommand handles the /cashout command
func (f *Feature) HandleCashoutCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleCashout(s, i)
}

// HandleInteraction handles grid button presses
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	if strings.HasPrefix(i.MessageComponentData().CustomID, cellCustomIDPrefix) {
		f.handleReveal(s, i)
	}
}
