package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
	"minesbot/models"
	"minesbot/service"
)

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if _, err := f.userService.GetOrCreateUser(ctx, discordID, i.Member.User.Username); err != nil {
		log.Errorf("Error getting/creating user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	owned, err := f.shopService.OwnedItems(ctx, discordID)
	if err != nil {
		log.Errorf("Error fetching items for user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to fetch the shop. Please try again.")
		return
	}

	ownedIDs := make(map[string]bool, len(owned))
	for _, item := range owned {
		ownedIDs[item.ID] = true
	}

	embed := BuildCatalogEmbed(f.shopService.ListItems(), ownedIDs)
	common.RespondWithEmbed(s, i, embed, true)
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var itemID string
	for _, opt := range options {
		if opt.Name == "item" {
			itemID = opt.StringValue()
		}
	}

	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if _, err := f.userService.GetOrCreateUser(ctx, discordID, i.Member.User.Username); err != nil {
		log.Errorf("Error getting/creating user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	item, err := f.shopService.Buy(ctx, discordID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			common.RespondWithError(s, i, "That item isn't in the shop. Use `/shop list` to see the catalog.")
		case errors.Is(err, service.ErrItemAlreadyOwned):
			common.RespondWithError(s, i, "You already own that item.")
		case errors.Is(err, service.ErrInsufficientFunds):
			common.RespondWithError(s, i, "You don't have enough coins for that item.")
		default:
			log.Errorf("Error buying item %s for user %d: %v", itemID, discordID, err)
			common.RespondWithError(s, i, "Unable to complete the purchase. Please try again.")
		}
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf("🛒 You bought %s **%s** for **%s coins**!",
		item.Emoji, item.Name, common.FormatBalance(item.Price)))
}

func (f *Feature) handleGive(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var itemID string
	var recipient *discordgo.User
	for _, opt := range options {
		switch opt.Name {
		case "item":
			itemID = opt.StringValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient.")
		return
	}
	if recipient.Bot {
		common.RespondWithError(s, i, "Bots can't hold items.")
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

	if err := f.shopService.Give(ctx, fromDiscordID, toDiscordID, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			common.RespondWithError(s, i, "That item doesn't exist. Use `/shop list` to see the catalog.")
		case errors.Is(err, service.ErrItemNotOwned):
			common.RespondWithError(s, i, "You don't own that item.")
		case errors.Is(err, service.ErrItemAlreadyOwned):
			common.RespondWithError(s, i, "They already own that item.")
		case errors.Is(err, service.ErrInvalidAmount):
			common.RespondWithError(s, i, "You can't give an item to yourself.")
		default:
			log.Errorf("Error giving item %s from %d to %d: %v", itemID, fromDiscordID, toDiscordID, err)
			common.RespondWithError(s, i, "Unable to give the item. Please try again.")
		}
		return
	}

	recipientName := common.GetDisplayName(s, i.GuildID, recipient.ID)
	if item, ok := models.ItemByID(itemID); ok {
		common.RespondWithMessage(s, i, fmt.Sprintf("🎁 You gave %s **%s** to **%s**.",
			item.Emoji, item.Name, recipientName))
		return
	}
	common.RespondWithMessage(s, i, fmt.Sprintf("🎁 You gave your item to **%s**.", recipientName))
}
