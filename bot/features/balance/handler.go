package balance

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	user, err := f.userService.GetOrCreateUser(ctx, discordID, i.Member.User.Username)
	if err != nil {
		log.Errorf("Error getting user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)
	common.RespondWithMessage(s, i, fmt.Sprintf("%s, your current balance: **%s coins**",
		displayName, common.FormatBalance(user.Balance)))
}
