package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/draft-bot/internal/models"
)

const maxListedPlayers = 25

func (hm *HandlerManager) handleDraft(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	state, err := hm.board.DraftState()
	if err != nil {
		hm.logger.Error("Failed to load draft state: ", err)
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Could not read the draft sheet: %v", err))
		return
	}

	if len(state.Picks) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No picks yet. %d teams are registered on the sheet.", len(state.Teams)))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Draft progress** (%s format): %d picks, %d teams\n```\n",
		hm.board.Format(), len(state.Picks), len(state.Teams)))

	for _, team := range state.Teams {
		picks := state.PicksByOwner(team.Owner)
		sb.WriteString(fmt.Sprintf("%s (%s) - %d picks\n", team.Owner, team.TeamName, len(picks)))
		for _, pick := range picks {
			sb.WriteString(fmt.Sprintf("  %s\n", pick.Player.String()))
		}
	}
	sb.WriteString("```")

	sendChunked(s, m.ChannelID, sb.String())
}

func (hm *HandlerManager) handleRankings(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!rankings <position>` (QB, RB, WR, TE, K, DST)")
		return
	}

	pos := models.ParsePosition(args[0])
	if pos == models.PosUnknown {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Unknown position %q. Try QB, RB, WR, TE, K, or DST.", args[0]))
		return
	}

	players, err := hm.rankings.Get(pos)
	if err != nil {
		hm.logger.Error("Failed to fetch rankings: ", err)
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Could not fetch %s rankings: %v", pos, err))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s rankings** (top %d)\n```\n", pos, maxListedPlayers))
	for i, p := range players {
		if i >= maxListedPlayers {
			break
		}
		sb.WriteString(fmt.Sprintf("%3d. %-24s %-4s bye %2d  %.1f pts\n",
			p.Ranking, p.Name, p.Team, p.ByeWeek, p.ProjectedPoints))
	}
	sb.WriteString("```")

	sendChunked(s, m.ChannelID, sb.String())
}

func (hm *HandlerManager) handlePlayer(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!player <name>`")
		return
	}
	query := strings.Join(args, " ")

	// Make sure every position is cached before searching across them
	for _, pos := range models.DraftablePositions {
		if _, err := hm.rankings.Get(pos); err != nil {
			hm.logger.Warn("Could not load rankings for ", pos, ": ", err)
		}
	}

	matches := hm.rankings.SearchPlayers(query)
	if len(matches) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No players found matching %q", query))
		return
	}

	state, err := hm.board.DraftState()
	if err != nil {
		hm.logger.Warn("Draft state unavailable for player lookup: ", err)
		state = nil
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	for i, p := range matches {
		if i >= 10 {
			break
		}
		status := "available"
		if state != nil && state.IsPlayerDrafted(p) {
			status = "drafted"
		}
		injury := ""
		if p.InjuryStatus != models.InjuryHealthy {
			injury = fmt.Sprintf(", %s", p.InjuryStatus)
		}
		sb.WriteString(fmt.Sprintf("%s  rank %d, bye %d, %.1f pts%s  [%s]\n",
			p.String(), p.Ranking, p.ByeWeek, p.ProjectedPoints, injury, status))
		if p.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", p.Notes))
		}
	}
	sb.WriteString("```")

	sendChunked(s, m.ChannelID, sb.String())
}

// sendChunked splits long messages below Discord's 2000-character limit on
// line boundaries, re-opening code fences across the break
func sendChunked(s *discordgo.Session, channelID, content string) {
	const limit = 1900

	for len(content) > limit {
		cut := strings.LastIndex(content[:limit], "\n")
		if cut <= 0 {
			cut = limit
		}
		chunk := content[:cut]
		content = content[cut:]

		openFence := strings.Count(chunk, "```")%2 == 1
		if openFence {
			chunk += "\n```"
			content = "```\n" + content
		}
		s.ChannelMessageSend(channelID, chunk)
	}
	if strings.TrimSpace(content) != "" {
		s.ChannelMessageSend(channelID, content)
	}
}
