package team

import (
	"context"
	"sync"

	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/roster"
)

// MockService is a mock implementation of the TeamService interface for
// testing. It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	// Spies for method calls
	ResolveTeamIDFunc func(ctx context.Context, name string, fallbackID int) (int, error)
	UpcomingGamesFunc func(ctx context.Context, teamID int) ([]bdl.Game, error)
	RecentGamesFunc   func(ctx context.Context, teamID int) ([]bdl.Game, error)
	RosterFunc        func(ctx context.Context, teamName string) ([]roster.Player, []roster.Coach, error)

	// Call records
	ResolveTeamIDCalls []string
	UpcomingGamesCalls []int
	RecentGamesCalls   []int
	RosterCalls        []string
}

var _ TeamService = (*MockService)(nil)

// NewMockService creates a new mock instance.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) ResolveTeamID(ctx context.Context, name string, fallbackID int) (int, error) {
	m.mu.Lock()
	m.ResolveTeamIDCalls = append(m.ResolveTeamIDCalls, name)
	m.mu.Unlock()
	if m.ResolveTeamIDFunc != nil {
		return m.ResolveTeamIDFunc(ctx, name, fallbackID)
	}
	return fallbackID, nil
}

func (m *MockService) UpcomingGames(ctx context.Context, teamID int) ([]bdl.Game, error) {
	m.mu.Lock()
	m.UpcomingGamesCalls = append(m.UpcomingGamesCalls, teamID)
	m.mu.Unlock()
	if m.UpcomingGamesFunc != nil {
		return m.UpcomingGamesFunc(ctx, teamID)
	}
	return []bdl.Game{}, nil
}

func (m *MockService) RecentGames(ctx context.Context, teamID int) ([]bdl.Game, error) {
	m.mu.Lock()
	m.RecentGamesCalls = append(m.RecentGamesCalls, teamID)
	m.mu.Unlock()
	if m.RecentGamesFunc != nil {
		return m.RecentGamesFunc(ctx, teamID)
	}
	return []bdl.Game{}, nil
}

func (m *MockService) Roster(ctx context.Context, teamName string) ([]roster.Player, []roster.Coach, error) {
	m.mu.Lock()
	m.RosterCalls = append(m.RosterCalls, teamName)
	m.mu.Unlock()
	if m.RosterFunc != nil {
		return m.RosterFunc(ctx, teamName)
	}
	return []roster.Player{}, []roster.Coach{}, nil
}
