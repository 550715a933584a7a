package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
	"minesbot/service"
)

func (f *Feature) handleGift(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient.")
		return
	}
	if recipient.Bot {
		common.RespondWithError(s, i, "Bots don't need coins.")
		return
	}

	fromDiscordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing sender Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	toDiscordID, err := common.ParseDiscordID(recipient.ID)
	if err != nil {
		log.Errorf("Error parsing recipient Discord ID %s: %v", recipient.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Both accounts must exist before the transfer
	if _, err := f.userService.GetOrCreateUser(ctx, fromDiscordID, i.Member.User.Username); err != nil {
		log.Errorf("Error getting/creating sender %d: %v", fromDiscordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if _, err := f.userService.GetOrCreateUser(ctx, toDiscordID, recipient.Username); err != nil {
		log.Errorf("Error getting/creating recipient %d: %v", toDiscordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.userService.Transfer(ctx, fromDiscordID, toDiscordID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			common.RespondWithError(s, i, "Gift amount must be positive, and you can't gift yourself.")
		case errors.Is(err, service.ErrInsufficientFunds):
			common.RespondWithError(s, i, "You don't have enough coins for that gift.")
		default:
			log.Errorf("Error transferring %d coins from %d to %d: %v", amount, fromDiscordID, toDiscordID, err)
			common.RespondWithError(s, i, "Unable to process the gift. Please try again.")
		}
		return
	}

	senderName := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)
	recipientName := common.GetDisplayName(s, i.GuildID, recipient.ID)
	common.RespondWithMessage(s, i, fmt.Sprintf("✅ **%s** gifted **%s coins** to **%s**.",
		senderName, common.FormatBalance(result.Amount), recipientName))
}
