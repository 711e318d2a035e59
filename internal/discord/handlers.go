package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/draft-bot/internal/config"
	"github.com/pmurley/draft-bot/internal/draft"
	"github.com/pmurley/draft-bot/internal/rankings"
	"github.com/pmurley/draft-bot/pkg/logger"
)

type HandlerManager struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *logger.Logger
	board    *draft.Board
	rankings *rankings.Cache
	commands map[string]CommandHandler
}

type CommandHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

func NewHandlerManager(
	session *discordgo.Session,
	cfg *config.Config,
	log *logger.Logger,
	board *draft.Board,
	rankingsCache *rankings.Cache,
) *HandlerManager {
	hm := &HandlerManager{
		session:  session,
		config:   cfg,
		logger:   log,
		board:    board,
		rankings: rankingsCache,
		commands: make(map[string]CommandHandler),
	}

	hm.registerCommands()

	return hm
}

func (hm *HandlerManager) RegisterHandlers() {
	hm.session.AddHandler(hm.messageCreate)
}

func (hm *HandlerManager) registerCommands() {
	hm.commands["help"] = hm.handleHelp
	hm.commands["reload"] = hm.handleReload
	hm.commands["draft"] = hm.handleDraft
	hm.commands["rankings"] = hm.handleRankings
	hm.commands["player"] = hm.handlePlayer
}

func (hm *HandlerManager) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, hm.config.CommandPrefix) {
		return
	}

	content := strings.TrimPrefix(m.Content, hm.config.CommandPrefix)
	parts := strings.Fields(content)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	if handler, exists := hm.commands[command]; exists {
		handler(s, m, args)
	}
}

func (hm *HandlerManager) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	helpMessage := `**Draft Bot Commands:**
` + "```" + `
!help             - Show this help message
!reload           - Force a fresh read of the draft sheet
!draft            - Show the draft board (picks by owner)
!rankings <pos>   - Show rankings for a position (QB, RB, WR, TE, K, DST)
!player <name>    - Look up a player in the rankings
` + "```"

	s.ChannelMessageSend(m.ChannelID, helpMessage)
}

func (hm *HandlerManager) handleReload(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	hm.board.Refresh()
	s.ChannelMessageSend(m.ChannelID, "Draft sheet cache cleared, next command will fetch fresh data.")
}
