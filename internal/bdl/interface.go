package bdl

import (
	"context"
	"time"
)

// GamesClient defines the interface for the balldontlie games/teams API.
// This allows for mock implementations to be used in tests.
type GamesClient interface {
	ListTeams(ctx context.Context) ([]Team, error)
	GamesBetween(ctx context.Context, teamID int, start, end time.Time, limit int) ([]Game, error)
}
