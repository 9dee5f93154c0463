// Package format turns upstream records into the bot's one-line text
// representations. Everything here is pure: the reference time is passed in
// rather than read from the system clock.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/roster"
)

const (
	playersHeading = "Игроки"
	coachesHeading = "Тренерский штаб"
	noData         = "нет данных"
)

// GameUpcoming renders a scheduled game as "{date} | {H|A} | vs {opponent}"
// from the tracked team's point of view.
func GameUpcoming(game bdl.Game, teamID int, now time.Time) string {
	isHome := game.HomeTeam.ID == teamID
	opponent := opponentName(game, isHome)
	return fmt.Sprintf("%s | %s | vs %s", gameDate(game.Date, now), locationTag(isHome), opponent)
}

// GameResult renders a completed game as
// "{date} | {H|A} | {Win|Lose} {teamScore}-{opponentScore} vs {opponent}".
// The comparison is strict-greater: a tie reads as "Lose".
func GameResult(game bdl.Game, teamID int, now time.Time) string {
	isHome := game.HomeTeam.ID == teamID

	teamScore, opponentScore := game.HomeTeamScore, game.VisitorTeamScore
	if !isHome {
		teamScore, opponentScore = game.VisitorTeamScore, game.HomeTeamScore
	}

	result := "Lose"
	if teamScore > opponentScore {
		result = "Win"
	}

	return fmt.Sprintf("%s | %s | %s %d-%d vs %s",
		gameDate(game.Date, now), locationTag(isHome), result, teamScore, opponentScore, opponentName(game, isHome))
}

// PlayerLine renders one roster player. Height and weight are converted to
// metric; a missing age reads as "N/A".
func PlayerLine(p roster.Player) string {
	age := "N/A"
	if p.Age > 0 {
		age = fmt.Sprintf("%d", p.Age)
	}
	return fmt.Sprintf("%s | #%s | %s | %s, %s | %s лет",
		p.Name, p.Jersey, p.Position, HeightToMetric(p.Height), WeightToMetric(p.Weight), age)
}

// CoachLine renders one coach with their role.
func CoachLine(c roster.Coach) string {
	return fmt.Sprintf("%s | %s", c.Name, c.Role)
}

// RosterBlock renders the full roster as two labeled sections. An empty
// section shows a placeholder instead of disappearing.
func RosterBlock(players []roster.Player, coaches []roster.Coach) string {
	var b strings.Builder

	b.WriteString(playersHeading + ":\n")
	if len(players) == 0 {
		b.WriteString(noData)
	} else {
		lines := make([]string, 0, len(players))
		for _, p := range players {
			lines = append(lines, PlayerLine(p))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\n" + coachesHeading + ":\n")
	if len(coaches) == 0 {
		b.WriteString(noData)
	} else {
		lines := make([]string, 0, len(coaches))
		for _, c := range coaches {
			lines = append(lines, CoachLine(c))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	return b.String()
}

// gameDate renders an abbreviated month and day, appending the year only
// when it differs from the reference year.
func gameDate(date, now time.Time) string {
	if date.Year() == now.Year() {
		return date.Format("Jan 2")
	}
	return date.Format("Jan 2 2006")
}

func locationTag(isHome bool) string {
	if isHome {
		return "H"
	}
	return "A"
}

func opponentName(game bdl.Game, isHome bool) string {
	if isHome {
		return game.VisitorTeam.FullName
	}
	return game.HomeTeam.FullName
}
