package leaderboard

import (
	"context"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
)

const leaderboardSize = 10

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	entries, err := f.statsService.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		log.Errorf("Error fetching leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to fetch the leaderboard. Please try again.")
		return
	}

	embed := BuildLeaderboardEmbed(entries, s, i.GuildID)
	common.RespondWithEmbed(s, i, embed, false)
}
