package shop

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"minesbot/bot/common"
	"minesbot/models"
)

// BuildCatalogEmbed creates the shop catalog embed, marking owned items
func BuildCatalogEmbed(items []models.Item, ownedIDs map[string]bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "🛒 Item Shop 🛒",
		Color:     common.ColorPrimary,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Buy with /shop buy, gift with /shop give",
		},
	}

	var lines []string
	for _, item := range items {
		line := fmt.Sprintf("%s **%s** - %s coins", item.Emoji, item.Name, common.FormatBalance(item.Price))
		if ownedIDs[item.ID] {
			line += " *(owned)*"
		}
		lines = append(lines, line)
	}

	embed.Description = strings.Join(lines, "\n")
	return embed
}
