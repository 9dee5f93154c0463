package notifier

import (
	"sync"

	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/roster"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendDailyDigestCalls []DailyDigestCall

	// Spies for format functions
	FormatGreetingResponseFunc func(teamName string) (any, error)
	FormatUpcomingResponseFunc func(games []bdl.Game, teamID int, warn error) (any, error)
	FormatResultsResponseFunc  func(games []bdl.Game, teamID int, warn error) (any, error)
	FormatRosterResponseFunc   func(players []roster.Player, coaches []roster.Coach) (any, error)

	// Last responses produced by the format functions
	LastUpcomingResponse any
	LastResultsResponse  any
	LastRosterResponse   any
}

// DailyDigestCall records the arguments of one SendDailyDigest invocation.
type DailyDigestCall struct {
	Upcoming, Recent []bdl.Game
	TeamID           int
	DryRun           bool
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDailyDigestCalls = nil
	m.LastUpcomingResponse = nil
	m.LastResultsResponse = nil
	m.LastRosterResponse = nil
}

func (m *Mock) SendDailyDigest(upcoming, recent []bdl.Game, teamID int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDailyDigestCalls = append(m.SendDailyDigestCalls, DailyDigestCall{Upcoming: upcoming, Recent: recent, TeamID: teamID, DryRun: dryRun})
	return nil
}

func (m *Mock) FormatGreetingResponse(teamName string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatGreetingResponseFunc != nil {
		return m.FormatGreetingResponseFunc(teamName)
	}
	return "formatted_greeting", nil
}

func (m *Mock) FormatUpcomingResponse(games []bdl.Game, teamID int, warn error) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatUpcomingResponseFunc != nil {
		resp, err := m.FormatUpcomingResponseFunc(games, teamID, warn)
		m.LastUpcomingResponse = resp
		return resp, err
	}
	return "formatted_upcoming", nil
}

func (m *Mock) FormatResultsResponse(games []bdl.Game, teamID int, warn error) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatResultsResponseFunc != nil {
		resp, err := m.FormatResultsResponseFunc(games, teamID, warn)
		m.LastResultsResponse = resp
		return resp, err
	}
	return "formatted_results", nil
}

func (m *Mock) FormatRosterResponse(players []roster.Player, coaches []roster.Coach) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatRosterResponseFunc != nil {
		resp, err := m.FormatRosterResponseFunc(players, coaches)
		m.LastRosterResponse = resp
		return resp, err
	}
	return "formatted_roster", nil
}
