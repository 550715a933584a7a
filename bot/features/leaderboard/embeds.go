package leaderboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"minesbot/bot/common"
	"minesbot/models"
)

// BuildLeaderboardEmbed creates the leaderboard embed
func BuildLeaderboardEmbed(entries []*models.LeaderboardEntry, session *discordgo.Session, guildID string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "🏆 Richest Players 🏆",
		Color:     common.ColorPrimary,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if len(entries) == 0 {
		embed.Description = "No players found"
		return embed
	}

	var lines []string
	for _, entry := range entries {
		medal := ""
		switch entry.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		default:
			medal = fmt.Sprintf("%d.", entry.Rank)
		}

		displayName := common.GetDisplayNameInt64(session, guildID, entry.DiscordID)
		lines = append(lines, fmt.Sprintf("%s **%s** - %s coins",
			medal, displayName, common.FormatBalance(entry.Balance)))
	}

	embed.Description = strings.Join(lines, "\n")
	return embed
}
