package slack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/format"
	"github.com/veskov/courtside/internal/roster"
)

const (
	upcomingHeading = "🏀 Ближайшие матчи"
	resultsHeading  = "🏀 Последние результаты"
	rosterHeading   = "🏀 Состав команды"
	digestHeading   = "🏀 Дайджест дня"
	noGamesText     = "нет данных"
)

// formatGreeting mirrors the bot's original /start reply.
func (s *Notifier) formatGreeting(teamName string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏀 Привет!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := fmt.Sprintf("Я бот для фанатов %s.\nЗдесь будут матчи, результаты и состав команды.", teamName)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatGamesList renders one games section: warning context first (if any),
// then one line per game, or a plain no-data placeholder.
func (s *Notifier) formatGamesList(heading string, games []bdl.Game, teamID int, warn error, played bool) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", heading, true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if warn != nil {
		warnText := slack.NewTextBlockObject("plain_text", "⚠️ "+warn.Error(), true, false)
		blocks = append(blocks, slack.NewContextBlock("", warnText))
	}

	body := noGamesText
	if len(games) > 0 {
		now := s.now()
		lines := make([]string, 0, len(games))
		for _, g := range games {
			if played {
				lines = append(lines, format.GameResult(g, teamID, now))
			} else {
				lines = append(lines, format.GameUpcoming(g, teamID, now))
			}
		}
		body = strings.Join(lines, "\n")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatRoster renders both roster sections as one message.
func (s *Notifier) formatRoster(players []roster.Player, coaches []roster.Coach) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", rosterHeading, true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := format.RosterBlock(players, coaches)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatDailyDigest bundles the upcoming and recent sections into a single
// channel push.
func (s *Notifier) formatDailyDigest(upcoming, recent []bdl.Game, teamID int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", digestHeading, true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	now := s.now()

	upcomingBody := noGamesText
	if len(upcoming) > 0 {
		lines := make([]string, 0, len(upcoming))
		for _, g := range upcoming {
			lines = append(lines, format.GameUpcoming(g, teamID, now))
		}
		upcomingBody = strings.Join(lines, "\n")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Ближайшие матчи:\n"+upcomingBody, true, false), nil, nil))

	recentBody := noGamesText
	if len(recent) > 0 {
		lines := make([]string, 0, len(recent))
		for _, g := range recent {
			lines = append(lines, format.GameResult(g, teamID, now))
		}
		recentBody = strings.Join(lines, "\n")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Последние результаты:\n"+recentBody, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
