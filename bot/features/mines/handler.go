package mines

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"minesbot/bot/common"
	"minesbot/config"
	"minesbot/service"
)

func (f *Feature) handleMine(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var stake int64
	var mineCount int
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "stake":
			stake = opt.IntValue()
		case "mines":
			mineCount = int(opt.IntValue())
		}
	}

	if _, err := f.userService.GetOrCreateUser(ctx, discordID, i.Member.User.Username); err != nil {
		log.Errorf("Error getting/creating user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	session, err := f.gameService.StartSession(ctx, discordID, stake, mineCount)
	if err != nil {
		f.respondStartError(s, i, err)
		return
	}

	content := fmt.Sprintf("🎮 **Mines** — stake **%s** coins, **%d** mines. Pick a cell!",
		common.FormatBalance(session.Stake), session.MineCount)
	common.RespondWithComponents(s, i, content, BuildGridComponents(session))
}

func (f *Feature) respondStartError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidStake):
		common.RespondWithError(s, i, fmt.Sprintf("The minimum stake is %d coins.", config.Get().MinStake))
	case errors.Is(err, service.ErrInvalidMineCount):
		common.RespondWithError(s, i, "Mines must be between 1 and 24.")
	case errors.Is(err, service.ErrSessionActive):
		common.RespondWithError(s, i, "You already have a game in progress. Finish it or use /cashout first.")
	case errors.Is(err, service.ErrInsufficientFunds):
		common.RespondWithError(s, i, "You don't have enough coins for that stake.")
	default:
		log.Errorf("Error starting mines session: %v", err)
		common.RespondWithError(s, i, "Unable to start a game. Please try again.")
	}
}

func (f *Feature) handleReveal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	index, ok := ParseCellIndex(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	result, err := f.gameService.RevealCell(ctx, discordID, index)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSession):
			common.RespondWithError(s, i, "You don't have an active game. Start one with /mine.")
		case errors.Is(err, service.ErrAlreadyOpened):
			common.RespondWithError(s, i, "That cell is already open.")
		case errors.Is(err, service.ErrIndexOutOfRange):
			common.RespondWithError(s, i, "That cell doesn't exist.")
		default:
			log.Errorf("Error revealing cell %d for user %d: %v", index, discordID, err)
			common.RespondWithError(s, i, "Unable to reveal that cell. Please try again.")
		}
		return
	}

	session := result.Session
	if result.HitBomb {
		content := fmt.Sprintf("💥 **Boom!** You hit a mine and lost your **%s** coin stake.",
			common.FormatBalance(session.Stake))
		common.UpdateComponentMessage(s, i, content, BuildGridComponents(session))
		return
	}

	gems := session.Gems()
	content := fmt.Sprintf("💎 **%d** gem(s) revealed — multiplier ×%.2f. Use /cashout for **%s** coins, or keep digging.",
		gems, service.Multiplier(gems), common.FormatBalance(service.Reward(session.Stake, gems)))
	common.UpdateComponentMessage(s, i, content, BuildGridComponents(session))
}

func (f *Feature) handleCashout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseDiscordID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.gameService.Cashout(ctx, discordID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			common.RespondWithError(s, i, "You don't have an active game. Start one with /mine.")
			return
		}
		log.Errorf("Error cashing out for user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to cash out. Please try again.")
		return
	}

	if result.Gems == 0 {
		common.RespondWithMessage(s, i, fmt.Sprintf(
			"🪙 Cashed out with no gems revealed, so the stake is forfeit. New balance: **%s** coins.",
			common.FormatBalance(result.NewBalance)))
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf(
		"💰 Cashed out **%d** gem(s) at ×%.2f for **%s** coins. New balance: **%s** coins.",
		result.Gems, result.Multiplier,
		common.FormatBalance(result.Reward),
		common.FormatBalance(result.NewBalance)))
}
