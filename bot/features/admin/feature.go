package admin

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
	"minesbot/config"
	"minesbot/events"
	"minesbot/service"
)

// Feature handles the admin commands
type Feature struct {
	userService service.UserService
	eventBus    *events.Bus
}

// New creates a new admin feature
func New(userService service.UserService, eventBus *events.Bus) *Feature {
	return &Feature{
		userService: userService,
		eventBus:    eventBus,
	}
}

// HandleCommand handles the /admin command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !config.Get().IsAdmin(discordID) {
		common.RespondWithError(s, i, "You don't have permission to use this command.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: broadcast, setbalance, or resetall")
		return
	}

	switch options[0].Name {
	case "broadcast":
		f.handleBroadcast(s, i, options[0].Options)
	case "setbalance":
		f.handleSetBalance(s, i, options[0].Options)
	case "resetall":
		f.handleResetAll(s, i)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}
