package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/draft-bot/internal/config"
	"github.com/pmurley/draft-bot/internal/discord"
	"github.com/pmurley/draft-bot/internal/draft"
	"github.com/pmurley/draft-bot/internal/rankings"
	"github.com/pmurley/draft-bot/internal/sheets"
	"github.com/pmurley/draft-bot/pkg/logger"
)

type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *logger.Logger
	board    *draft.Board
	rankings *rankings.Cache
	handlers *discord.HandlerManager
}

func New(cfg *config.Config, log *logger.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// We need these for DMs and message content
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	format, err := draft.ParseFormat(cfg.DraftFormat)
	if err != nil {
		return nil, err
	}

	rankingsCache := rankings.NewCache(rankings.NewSharksScraper(log), log)

	coords := sheets.Coordinates{
		SpreadsheetID: cfg.SpreadsheetID,
		GID:           cfg.SheetGID(),
		Range:         cfg.SheetRange(),
	}

	board, err := draft.NewBoard(format, coords, sheets.NewClient(), rankingsCache, cfg.DraftCacheTTL, log)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		session:  session,
		config:   cfg,
		logger:   log,
		board:    board,
		rankings: rankingsCache,
	}

	b.handlers = discord.NewHandlerManager(b.session, cfg, log, board, rankingsCache)

	return b, nil
}

func (b *Bot) Start() error {
	b.handlers.RegisterHandlers()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	// Warm the draft state so the first command answers quickly
	if _, err := b.board.DraftState(); err != nil {
		b.logger.Error("Failed to load initial draft state: ", err)
	}

	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}
