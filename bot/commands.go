package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"minesbot/models"
)

func (b *Bot) registerCommands() error {
	minStake := float64(1)
	minMines := float64(1)
	maxMines := float64(24)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "mine",
			Description: "Start a game of Mines",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "stake",
					Description: "Amount of coins to stake",
					Required:    true,
					MinValue:    &minStake,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "mines",
					Description: "Number of mines on the board (1-24)",
					Required:    true,
					MinValue:    &minMines,
					MaxValue:    maxMines,
				},
			},
		},
		{
			Name:        "cashout",
			Description: "Cash out your active Mines game",
		},
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily bonus",
		},
		{
			Name:        "weekly",
			Description: "Claim your weekly bonus",
		},
		{
			Name:        "gift",
			Description: "Gift coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins to gift",
					Required:    true,
					MinValue:    &minStake,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to gift to",
					Required:    true,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "shop",
			Description: "Browse and buy cosmetic items",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show the item catalog",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buy",
					Description: "Buy an item from the shop",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item to buy",
							Required:    true,
							Choices:     itemChoices(),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "give",
					Description: "Give an owned item to another player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item to give away",
							Required:    true,
							Choices:     itemChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "User to give the item to",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "admin",
			Description: "Administrative commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "broadcast",
					Description: "Send an announcement to the configured channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message",
							Description: "Message to broadcast",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setbalance",
					Description: "Set a player's balance",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "User to modify",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "balance",
							Description: "New balance",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "resetall",
					Description: "Reset every player to the starting balance",
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

// itemChoices builds the shop item option choices from the catalog
func itemChoices() []*discordgo.ApplicationCommandOptionChoice {
	items := models.Catalog()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(items))
	for _, item := range items {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s %s", item.Emoji, item.Name),
			Value: item.ID,
		})
	}
	return choices
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "mine":
		b.minesFeature.HandleMineCommand(s, i)
	case "cashout":
		b.minesFeature.HandleCashoutCommand(s, i)
	case "balance":
		b.balanceFeature.HandleCommand(s, i)
	case "daily":
		b.bonusFeature.HandleDailyCommand(s, i)
	case "weekly":
		b.bonusFeature.HandleWeeklyCommand(s, i)
	case "gift":
		b.transferFeature.HandleCommand(s, i)
	case "leaderboard":
		b.leaderboardFeature.HandleCommand(s, i)
	case "shop":
		b.shopFeature.HandleCommand(s, i)
	case "admin":
		b.adminFeature.HandleCommand(s, i)
	}
}
