package bdl

import (
	"context"
	"sync"
	"time"
)

// MockClient is a mock implementation of the GamesClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ListTeamsFunc    func(ctx context.Context) ([]Team, error)
	GamesBetweenFunc func(ctx context.Context, teamID int, start, end time.Time, limit int) ([]Game, error)

	// Call records
	ListTeamsCalls    int
	GamesBetweenCalls []GamesBetweenCall
}

// GamesBetweenCall records the arguments of one GamesBetween invocation.
type GamesBetweenCall struct {
	TeamID     int
	Start, End time.Time
	Limit      int
}

var _ GamesClient = (*MockClient)(nil)

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListTeamsCalls = 0
	m.GamesBetweenCalls = nil
}

func (m *MockClient) ListTeams(ctx context.Context) ([]Team, error) {
	m.mu.Lock()
	m.ListTeamsCalls++
	m.mu.Unlock()
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return []Team{}, nil
}

func (m *MockClient) GamesBetween(ctx context.Context, teamID int, start, end time.Time, limit int) ([]Game, error) {
	m.mu.Lock()
	m.GamesBetweenCalls = append(m.GamesBetweenCalls, GamesBetweenCall{TeamID: teamID, Start: start, End: end, Limit: limit})
	m.mu.Unlock()
	if m.GamesBetweenFunc != nil {
		return m.GamesBetweenFunc(ctx, teamID, start, end, limit)
	}
	return []Game{}, nil
}
