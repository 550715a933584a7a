package leaderboard

import (
	"github.com/bwmarrin/discordgo"

	"minesbot/service"
)

// Feature handles the leaderboard command
type Feature struct {
	statsService service.StatsService
}

// New creates a new leaderboard feature
func New(statsService service.StatsService) *Feature {
	return &Feature{
		statsService: statsService,
	}
}

// HandleCommand handles the /leaderboard command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleLeaderboard(s, i)
}
