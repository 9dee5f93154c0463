package roster

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the RosterClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spy for method calls
	TeamRosterFunc func(ctx context.Context, teamID int, season string) (TeamRoster, error)

	// Call records
	TeamRosterCalls []TeamRosterCall
}

// TeamRosterCall records the arguments of one TeamRoster invocation.
type TeamRosterCall struct {
	TeamID int
	Season string
}

var _ RosterClient = (*MockClient)(nil)

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TeamRosterCalls = nil
}

func (m *MockClient) TeamRoster(ctx context.Context, teamID int, season string) (TeamRoster, error) {
	m.mu.Lock()
	m.TeamRosterCalls = append(m.TeamRosterCalls, TeamRosterCall{TeamID: teamID, Season: season})
	m.mu.Unlock()
	if m.TeamRosterFunc != nil {
		return m.TeamRosterFunc(ctx, teamID, season)
	}
	return TeamRoster{}, nil
}
