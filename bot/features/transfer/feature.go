package transfer

import (
	"github.com/bwmarrin/discordgo"

	"minesbot/service"
)

type Feature struct {
	userService service.UserService
}

func New(userService service.UserService) *Feature {
	return &Feature{
		userService: userService,
	}
}

// HandleCommand handles the /gift command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleGift(s, i)
}
