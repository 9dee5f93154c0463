package notifier

import (
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/roster"
)

// Notifier defines a high-level interface for rendering and sending bot
// replies. This decouples the rest of the application from the specific
// chat provider (e.g., Slack).
//
// The warn argument on the Format methods carries a non-fatal resolution
// warning; implementations render it as a caution line above the data
// without suppressing the data itself.
type Notifier interface {
	// For the scheduled daily digest pushed to the fan channel
	SendDailyDigest(upcoming, recent []bdl.Game, teamID int, dryRun bool) error

	// For formatting responses for slash commands
	FormatGreetingResponse(teamName string) (any, error)
	FormatUpcomingResponse(games []bdl.Game, teamID int, warn error) (any, error)
	FormatResultsResponse(games []bdl.Game, teamID int, warn error) (any, error)
	FormatRosterResponse(players []roster.Player, coaches []roster.Coach) (any, error)
}
