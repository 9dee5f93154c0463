package roster

import "context"

// RosterClient defines the interface for the roster data provider.
// This allows for mock implementations to be used in tests.
type RosterClient interface {
	TeamRoster(ctx context.Context, teamID int, season string) (TeamRoster, error)
}
