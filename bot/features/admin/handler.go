package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
	"minesbot/events"
	"minesbot/service"
)

func (f *Feature) handleBroadcast(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	var message string
	for _, opt := range options {
		if opt.Name == "message" {
			message = opt.StringValue()
		}
	}

	if message == "" {
		common.RespondWithError(s, i, "Broadcast message cannot be empty.")
		return
	}

	f.eventBus.Publish(events.BroadcastEvent{Message: message})
	common.RespondWithMessage(s, i, "📢 Broadcast sent.")
}

func (f *Feature) handleSetBalance(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var balance int64
	var target *discordgo.User
	for _, opt := range options {
		switch opt.Name {
		case "balance":
			balance = opt.IntValue()
		case "user":
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	targetID, err := common.ParseDiscordID(target.ID)
	if err != nil {
		log.Errorf("Error parsing target Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if _, err := f.userService.GetOrCreateUser(ctx, targetID, target.Username); err != nil {
		log.Errorf("Error getting/creating user %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := f.userService.SetBalance(ctx, targetID, balance); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			common.RespondWithError(s, i, "Balance cannot be negative.")
		default:
			log.Errorf("Error setting balance for user %d: %v", targetID, err)
			common.RespondWithError(s, i, "Unable to set the balance. Please try again.")
		}
		return
	}

	targetName := common.GetDisplayName(s, i.GuildID, target.ID)
	common.RespondWithMessage(s, i, fmt.Sprintf("⚖️ Set **%s**'s balance to **%s coins**.",
		targetName, common.FormatBalance(balance)))
}

func (f *Feature) handleResetAll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if err := f.userService.ResetAll(ctx); err != nil {
		log.Errorf("Error resetting all users: %v", err)
		common.RespondWithError(s, i, "Unable to reset the economy. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, "♻️ Economy reset. Everyone is back to the starting balance.")
}
