package team

import (
	"context"

	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/roster"
)

// TeamService is the fetch layer the bot's command handlers talk to. Every
// operation resolves from the in-process caches first and falls back to the
// upstream providers; failures come back as error values alongside empty
// data, never as panics.
type TeamService interface {
	// ResolveTeamID maps a team's full name to the games provider's id.
	// The returned id is always usable: on any failure it is fallbackID
	// and the error describes why the real id could not be resolved.
	ResolveTeamID(ctx context.Context, name string, fallbackID int) (int, error)

	// UpcomingGames returns the team's next scheduled games. On failure the
	// slice is empty, the error set, and the cache left untouched.
	UpcomingGames(ctx context.Context, teamID int) ([]bdl.Game, error)

	// RecentGames returns the team's latest played games, same contract as
	// UpcomingGames.
	RecentGames(ctx context.Context, teamID int) ([]bdl.Game, error)

	// Roster returns the team's players and coaches by team name. On any
	// failure both slices are empty, the error set, and the cache left
	// untouched.
	Roster(ctx context.Context, teamName string) ([]roster.Player, []roster.Coach, error)
}
