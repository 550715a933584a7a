package bonus

import (
	"github.com/bwmarrin/discordgo"

	"minesbot/models"
	"minesbot/service"
)

type Feature struct {
	bonusService service.BonusService
	userService  service.UserService
}

func New(bonusService service.BonusService, userService service.UserService) *Feature {
	return &Feature{
		bonusService: bonusService,
		userService:  userService,
	}
}

// HandleDailyCommand handles the /daily command
func (f *Feature) HandleDailyCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleClaim(s, i, models.BonusKindDaily)
}

// HandleWeeklyCommand handles the /weekly command
func (f *Feature) HandleWeeklyCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleClaim(s, i, models.BonusKindWeekly)
}
