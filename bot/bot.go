package bot

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bwmarrin/discordgo"

	"minesbot/bot/features/admin"
	"minesbot/bot/features/balance"
	"minesbot/bot/features/bonus"
	"minesbot/bot/features/leaderboard"
	"minesbot/bot/features/mines"
	"minesbot/bot/features/shop"
	"minesbot/bot/features/transfer"
	"minesbot/events"
	"minesbot/service"
)

// Config holds bot configuration
type Config struct {
	Token             string
	GuildID           string
	AnnounceChannelID string
}

type Bot struct {
	config  Config
	session *discordgo.Session

	minesFeature       *mines.Feature
	balanceFeature     *balance.Feature
	bonusFeature       *bonus.Feature
	transferFeature    *transfer.Feature
	leaderboardFeature *leaderboard.Feature
	shopFeature        *shop.Feature
	adminFeature       *admin.Feature

	eventBus *events.Bus
}

func New(config Config, gameService service.GameService, userService service.UserService, bonusService service.BonusService, statsService service.StatsService, shopService service.ShopService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:             config,
		session:            dg,
		minesFeature:       mines.New(gameService, userService),
		balanceFeature:     balance.New(userService),
		bonusFeature:       bonus.New(bonusService, userService),
		transferFeature:    transfer.New(userService),
		leaderboardFeature: leaderboard.New(statsService),
		shopFeature:        shop.New(shopService, userService),
		adminFeature:       admin.New(userService, eventBus),
		eventBus:           eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleComponentInteractions)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Relay admin broadcasts to the announcement channel
	if config.AnnounceChannelID != "" {
		eventBus.Subscribe(events.EventTypeBroadcast, func(ctx context.Context, event events.Event) {
			broadcast, ok := event.(events.BroadcastEvent)
			if !ok {
				return
			}
			if _, err := bot.session.ChannelMessageSend(config.AnnounceChannelID, fmt.Sprintf("📢 %s", broadcast.Message)); err != nil {
				log.Errorf("Failed to send broadcast message: %v", err)
			}
		})
		log.Info("Broadcast announcements enabled")
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleComponentInteractions routes button presses to the owning feature
func (b *Bot) handleComponentInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, "mines_") {
		b.minesFeature.HandleInteraction(s, i)
	}
}
