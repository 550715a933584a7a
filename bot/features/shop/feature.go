package shop

import (
	"github.com/bwmarrin/discordgo"

	"minesbot/bot/common"
	"minesbot/service"
)

// Feature handles the shop commands
type Feature struct {
	shopService service.ShopService
	userService service.UserService
}

// New creates a new shop feature
func New(shopService service.ShopService, userService service.UserService) *Feature {
	return &Feature{
		shopService: shopService,
		userService: userService,
	}
}

// HandleCommand handles the /shop command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: list, buy, or give")
		return
	}

	switch options[0].Name {
	case "list":
		f.handleList(s, i)
	case "buy":
		f.handleBuy(s, i, options[0].Options)
	case "give":
		f.handleGive(s, i, options[0].Options)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}
