package rankings

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pmurley/draft-bot/internal/models"
	"github.com/pmurley/draft-bot/pkg/logger"
)

// Provider fetches ranked players for one position, best first
type Provider interface {
	FetchRankings(pos models.Position) (models.PlayerList, error)
}

// positionParams maps our positions to FantasySharks URL parameters; they
// use PK for kickers and D for defenses
var positionParams = map[models.Position]string{
	models.PosQB:  "QB",
	models.PosRB:  "RB",
	models.PosWR:  "WR",
	models.PosTE:  "TE",
	models.PosK:   "PK",
	models.PosDST: "D",
}

// SharksScraper scrapes season projections from FantasySharks
type SharksScraper struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewSharksScraper(log *logger.Logger) *SharksScraper {
	return &SharksScraper{
		baseURL: "https://www.fantasysharks.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

// NewSharksScraperWithBaseURL is used by tests to point the scraper at a
// fake server
func NewSharksScraperWithBaseURL(baseURL string, log *logger.Logger) *SharksScraper {
	s := NewSharksScraper(log)
	s.baseURL = baseURL
	return s
}

func (s *SharksScraper) FetchRankings(pos models.Position) (models.PlayerList, error) {
	param, ok := positionParams[pos]
	if !ok {
		return nil, fmt.Errorf("position %s is not supported by the rankings source", pos)
	}

	url := fmt.Sprintf("%s/apps/Projections/SeasonProjections.php?l=2&pos=%s&RosterSize=&SalaryCap=&Rookie=false&Comments=true",
		s.baseURL, param)

	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rankings page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code fetching rankings: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing rankings HTML: %w", err)
	}

	return s.parseTable(doc, pos)
}

// parseTable walks the projections table. Player rows carry rank, ADP,
// "Last, First" name, team, and bye; a row with a single wide cell is
// commentary for the player above it.
func (s *SharksScraper) parseTable(doc *goquery.Document, pos models.Position) (models.PlayerList, error) {
	table := doc.Find("table#toolData").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, fmt.Errorf("no rankings table found for %s", pos)
	}

	var players models.PlayerList
	rows := table.Find("tr")

	rows.Each(func(i int, row *goquery.Selection) {
		if i < 2 {
			// two header rows
			return
		}

		cells := row.Find("td, th")
		if cells.Length() == 1 {
			// commentary row for the previous player
			if len(players) > 0 {
				commentary := strings.TrimSpace(cells.Eq(0).Text())
				if commentary != "" {
					last := &players[len(players)-1]
					if last.Notes != "" {
						last.Notes = last.Notes + " | " + commentary
					} else {
						last.Notes = commentary
					}
				}
			}
			return
		}
		if cells.Length() < 5 {
			return
		}

		// The live site repeats header and stats rows mid-table
		if isHeaderOrStatsRow(
			strings.TrimSpace(cells.Eq(2).Text()),
			strings.TrimSpace(cells.Eq(3).Text()),
			strings.TrimSpace(cells.Eq(4).Text()),
		) {
			s.logger.Debug("Skipping repeated header/stats row in rankings table")
			return
		}

		player, err := s.parsePlayerRow(cells, pos, len(players)+1)
		if err != nil {
			s.logger.Warn("Skipping rankings row: ", err)
			return
		}
		players = append(players, player)
	})

	s.logger.Info(fmt.Sprintf("Scraped %d %s players from FantasySharks", len(players), pos))
	return players, nil
}

func (s *SharksScraper) parsePlayerRow(cells *goquery.Selection, pos models.Position, rank int) (models.Player, error) {
	// Cell order: rank, ADP, name, team, bye, stats..., projected points.
	// Rookie markers are <sup> tags inside the name cell; injury markers are
	// img icons with the report text in an onmouseover popup.
	nameCell := cells.Eq(2).Clone()
	injuryStatus, injuryDetails := extractInjury(nameCell)
	nameCell.Find("sup").Remove()
	name := reverseSharksName(strings.TrimSpace(nameCell.Text()))
	if name == "" {
		return models.Player{}, fmt.Errorf("row %d has no player name", rank)
	}

	rawTeam := strings.TrimSpace(cells.Eq(3).Text())
	team, err := models.NormalizeTeamAbbrev(rawTeam)
	if err != nil {
		s.logger.Debug("Unknown team in rankings for ", name, ": ", rawTeam)
	}

	// A bye the site gets wrong degrades to unknown; the player stays ranked
	bye, err := strconv.Atoi(strings.TrimSpace(cells.Eq(4).Text()))
	if err != nil || bye < 1 || bye > 14 {
		bye = 0
	}

	// Projected fantasy points sit in the final column
	points := 0.0
	if cells.Length() > 5 {
		lastText := strings.TrimSpace(cells.Eq(cells.Length() - 1).Text())
		if v, err := strconv.ParseFloat(strings.ReplaceAll(lastText, ",", ""), 64); err == nil {
			points = v
		}
	}

	notes := ""
	if injuryDetails != "" {
		notes = "Injury: " + injuryDetails
	}

	player := models.Player{
		Name:            name,
		Team:            team,
		Position:        pos,
		ByeWeek:         bye,
		InjuryStatus:    injuryStatus,
		Ranking:         rank,
		ProjectedPoints: points,
		Notes:           notes,
	}
	if err := player.Validate(); err != nil {
		return models.Player{}, err
	}
	return player, nil
}

// exactHeaderNames are column labels the site repeats as full table rows
var exactHeaderNames = map[string]bool{
	"Name": true, "TDs": true, "TD": true, "Pass": true, "Rush": true,
	"Rec": true, "Pts": true, "Proj": true, "Rank": true, "ADP": true,
	"Position": true,
}

// isHeaderOrStatsRow detects the header and statistical summary rows the
// site interleaves with player rows, beyond the two at the top.
func isHeaderOrStatsRow(name, team, bye string) bool {
	if exactHeaderNames[name] {
		return true
	}
	if name == "Player" || strings.HasPrefix(name, "Player ") {
		return true
	}
	// Headers like "Name (Team)"; player name cells never carry parentheses
	if strings.Contains(name, "(") && strings.Contains(name, ")") {
		return true
	}

	// Stat range labels like "TD1-9" in the team column
	if team != "" && (strings.Contains(team, "TD") || strings.Contains(team, "-")) {
		if len(team) > 4 || strings.ContainsAny(team, "0123456789") {
			return true
		}
	}

	// Header rows carry text where the bye week belongs
	if bye != "" && bye != "-" && bye != "N/A" {
		if _, err := strconv.Atoi(bye); err != nil {
			return true
		}
	}

	return false
}

var (
	injuryPopupRe = regexp.MustCompile(`popup\(['"]([^'"]+)['"]`)
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
)

// extractInjury pulls the injury report out of a name cell. The site marks
// injured players with an icon whose onmouseover popup holds the report
// text, e.g. popup('<b> Out</b> Expected back Week 3').
func extractInjury(nameCell *goquery.Selection) (models.InjuryStatus, string) {
	status := models.InjuryHealthy
	details := ""

	nameCell.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if !strings.Contains(src, "injured") {
			return true
		}
		onmouseover, _ := img.Attr("onmouseover")
		m := injuryPopupRe.FindStringSubmatch(onmouseover)
		if m == nil {
			return true
		}

		text := strings.TrimSpace(htmlTagRe.ReplaceAllString(m[1], " "))
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			return true
		}

		details = text
		status = classifyInjury(text)
		return false
	})

	return status, details
}

// classifyInjury maps a report's leading designation word to a status. A
// report that names no recognized designation still marks the player
// questionable; an Out with a long-term timeline counts as injured reserve.
func classifyInjury(details string) models.InjuryStatus {
	status := models.InjuryHealthy
	if fields := strings.Fields(details); len(fields) > 0 {
		status = models.ParseInjuryStatus(fields[0])
	}
	if status == models.InjuryHealthy {
		status = models.InjuryQuestionable
	}
	if status == models.InjuryOut && injuryIsLongTerm(details) {
		status = models.InjuryReserve
	}
	return status
}

var longTermMarkers = []string{
	"season", "year", "months", "playoffs",
	"week 8", "week 9", "week 10", "week 11", "week 12", "week 13",
	"week 14", "week 15", "week 16", "week 17", "week 18",
}

func injuryIsLongTerm(details string) bool {
	lower := strings.ToLower(details)
	if strings.Contains(lower, "preseason") {
		return false
	}
	for _, marker := range longTermMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// reverseSharksName converts the site's "Allen, Josh" to "Josh Allen".
// Defense rows have no comma and pass through unchanged.
func reverseSharksName(raw string) string {
	last, first, found := strings.Cut(raw, ",")
	if !found {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}
