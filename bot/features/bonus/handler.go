package bonus

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
	"minesbot/models"
	"minesbot/service"
)

func (f *Feature) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate, kind models.BonusKind) {
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

	var result *models.BonusResult
	switch kind {
	case models.BonusKindWeekly:
		result, err = f.bonusService.ClaimWeekly(ctx, discordID)
	default:
		result, err = f.bonusService.ClaimDaily(ctx, discordID)
	}

	if err != nil {
		if ce, ok := service.AsCooldownError(err); ok {
			common.RespondWithError(s, i, fmt.Sprintf("Your %s bonus is on cooldown. Come back in %s.",
				ce.Kind, common.FormatCooldown(ce.Remaining)))
			return
		}
		log.Errorf("Error claiming %s bonus for user %d: %v", kind, discordID, err)
		common.RespondWithError(s, i, "Unable to claim the bonus. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf("🎁 You claimed your %s bonus of **%s** coins. New balance: **%s** coins.",
		result.Kind, common.FormatBalance(result.Amount), common.FormatBalance(result.NewBalance)))
}
