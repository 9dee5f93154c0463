package team_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/metrics"
	"github.com/veskov/courtside/internal/roster"
	"github.com/veskov/courtside/internal/team"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newService(t *testing.T, games *bdl.MockClient, rosters *roster.MockClient, clock *fakeClock) team.TeamService {
	t.Helper()
	return team.New(games, rosters, metrics.NewMock(), team.Config{
		GamesTTL:  300 * time.Second,
		RosterTTL: 600 * time.Second,
		Clock:     clock.Now,
	})
}

func lakersDirectory() []bdl.Team {
	return []bdl.Team{
		{ID: 2, FullName: "Boston Celtics"},
		{ID: 14, FullName: "Los Angeles Lakers"},
	}
}

func TestResolveTeamID_CachesAndSkipsNetwork(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	games.ListTeamsFunc = func(ctx context.Context) ([]bdl.Team, error) {
		return lakersDirectory(), nil
	}
	svc := newService(t, games, roster.NewMockClient(), clock)

	id, warn := svc.ResolveTeamID(context.Background(), "Los Angeles Lakers", 99)
	require.NoError(t, warn)
	assert.Equal(t, 14, id)
	assert.Equal(t, 1, games.ListTeamsCalls)

	// Second resolution is served from the permanent cache.
	id, warn = svc.ResolveTeamID(context.Background(), "los angeles LAKERS", 99)
	require.NoError(t, warn)
	assert.Equal(t, 14, id)
	assert.Equal(t, 1, games.ListTeamsCalls, "cached resolution must issue no network call")
}

func TestResolveTeamID_ProviderFailureFallsBack(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	games.ListTeamsFunc = func(ctx context.Context) ([]bdl.Team, error) {
		return nil, errors.New("connection refused")
	}
	svc := newService(t, games, roster.NewMockClient(), clock)

	id, warn := svc.ResolveTeamID(context.Background(), "Los Angeles Lakers", 14)
	assert.Equal(t, 14, id)
	require.Error(t, warn)
	assert.Contains(t, warn.Error(), "connection refused")

	// The fallback is cached too: repeated failures must not re-trigger
	// network calls indefinitely.
	id, warn = svc.ResolveTeamID(context.Background(), "Los Angeles Lakers", 14)
	assert.Equal(t, 14, id)
	require.NoError(t, warn)
	assert.Equal(t, 1, games.ListTeamsCalls)
}

func TestResolveTeamID_NameNotFoundIsItsOwnBranch(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	games.ListTeamsFunc = func(ctx context.Context) ([]bdl.Team, error) {
		return lakersDirectory(), nil
	}
	svc := newService(t, games, roster.NewMockClient(), clock)

	id, warn := svc.ResolveTeamID(context.Background(), "Seattle SuperSonics", 7)
	assert.Equal(t, 7, id)
	require.Error(t, warn)
	assert.Contains(t, warn.Error(), "no team named")
}

func TestUpcomingGames_WindowAndLimit(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	svc := newService(t, games, roster.NewMockClient(), clock)

	_, err := svc.UpcomingGames(context.Background(), 14)
	require.NoError(t, err)

	require.Len(t, games.GamesBetweenCalls, 1)
	call := games.GamesBetweenCalls[0]
	assert.Equal(t, 14, call.TeamID)
	assert.Equal(t, clock.Now(), call.Start)
	assert.Equal(t, clock.Now().AddDate(0, 0, 30), call.End)
	assert.Equal(t, 5, call.Limit)
}

func TestRecentGames_WindowLooksBack(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	svc := newService(t, games, roster.NewMockClient(), clock)

	_, err := svc.RecentGames(context.Background(), 14)
	require.NoError(t, err)

	require.Len(t, games.GamesBetweenCalls, 1)
	call := games.GamesBetweenCalls[0]
	assert.Equal(t, clock.Now().AddDate(0, 0, -30), call.Start)
	assert.Equal(t, clock.Now(), call.End)
}

func TestGames_FreshCacheSkipsNetwork(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	scheduled := []bdl.Game{{ID: 1, HomeTeam: bdl.Team{ID: 14}}}
	games.GamesBetweenFunc = func(ctx context.Context, teamID int, start, end time.Time, limit int) ([]bdl.Game, error) {
		return scheduled, nil
	}
	svc := newService(t, games, roster.NewMockClient(), clock)

	first, err := svc.UpcomingGames(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, scheduled, first)

	clock.Advance(299 * time.Second)
	second, err := svc.UpcomingGames(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, scheduled, second)
	assert.Len(t, games.GamesBetweenCalls, 1, "fresh entry must be served without a network call")

	clock.Advance(2 * time.Second)
	_, err = svc.UpcomingGames(context.Background(), 14)
	require.NoError(t, err)
	assert.Len(t, games.GamesBetweenCalls, 2, "stale entry must trigger a refresh")
}

func TestGames_UpcomingAndRecentUseSeparateSlots(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	svc := newService(t, games, roster.NewMockClient(), clock)

	_, _ = svc.UpcomingGames(context.Background(), 14)
	_, _ = svc.RecentGames(context.Background(), 14)
	assert.Len(t, games.GamesBetweenCalls, 2, "the two query kinds must not share a cache slot")
}

func TestGames_FailedRefreshLeavesCacheUntouched(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	games := bdl.NewMockClient()
	scheduled := []bdl.Game{{ID: 1, HomeTeam: bdl.Team{ID: 14}}}
	failing := false
	games.GamesBetweenFunc = func(ctx context.Context, teamID int, start, end time.Time, limit int) ([]bdl.Game, error) {
		if failing {
			return nil, errors.New("upstream down")
		}
		return scheduled, nil
	}
	svc := newService(t, games, roster.NewMockClient(), clock)

	_, err := svc.UpcomingGames(context.Background(), 14)
	require.NoError(t, err)

	// Entry goes stale, provider starts failing: callers get an empty
	// slice plus the error.
	clock.Advance(301 * time.Second)
	failing = true
	got, err := svc.UpcomingGames(context.Background(), 14)
	require.Error(t, err)
	assert.Empty(t, got)

	// The failed call contributed nothing: the next successful fetch
	// replaces the old entry, and until then every stale query retries.
	failing = false
	got, err = svc.UpcomingGames(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, scheduled, got)
	assert.Len(t, games.GamesBetweenCalls, 3)
}

func TestRoster_CachesPerTeamName(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	rosters := roster.NewMockClient()
	rosters.TeamRosterFunc = func(ctx context.Context, teamID int, season string) (roster.TeamRoster, error) {
		assert.Equal(t, 1610612747, teamID)
		assert.Equal(t, "2025-26", season)
		return roster.TeamRoster{
			Players: []roster.Player{{Name: "LeBron James"}},
			Coaches: []roster.Coach{{Name: "JJ Redick", Role: "Head Coach"}},
		}, nil
	}
	svc := newService(t, bdl.NewMockClient(), rosters, clock)

	players, coaches, err := svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)
	assert.Len(t, players, 1)
	assert.Len(t, coaches, 1)

	clock.Advance(599 * time.Second)
	_, _, err = svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)
	assert.Len(t, rosters.TeamRosterCalls, 1, "fresh roster must be served from cache")

	clock.Advance(2 * time.Second)
	_, _, err = svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)
	assert.Len(t, rosters.TeamRosterCalls, 2)
}

func TestRoster_UnknownTeam(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	rosters := roster.NewMockClient()
	svc := newService(t, bdl.NewMockClient(), rosters, clock)

	players, coaches, err := svc.Roster(context.Background(), "Seattle SuperSonics")
	require.Error(t, err)
	assert.Empty(t, players)
	assert.Empty(t, coaches)
	assert.Empty(t, rosters.TeamRosterCalls, "unknown teams must not reach the provider")
}

func TestRoster_FetchFailureLeavesCacheUntouched(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	rosters := roster.NewMockClient()
	failing := false
	rosters.TeamRosterFunc = func(ctx context.Context, teamID int, season string) (roster.TeamRoster, error) {
		if failing {
			return roster.TeamRoster{}, errors.New("blocked")
		}
		return roster.TeamRoster{Players: []roster.Player{{Name: "LeBron James"}}}, nil
	}
	svc := newService(t, bdl.NewMockClient(), rosters, clock)

	_, _, err := svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)

	clock.Advance(601 * time.Second)
	failing = true
	players, _, err := svc.Roster(context.Background(), "Los Angeles Lakers")
	require.Error(t, err)
	assert.Empty(t, players)

	failing = false
	players, _, err = svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestSeasonDerivedFromClock(t *testing.T) {
	games := bdl.NewMockClient()
	rosters := roster.NewMockClient()
	var seasons []string
	rosters.TeamRosterFunc = func(ctx context.Context, teamID int, season string) (roster.TeamRoster, error) {
		seasons = append(seasons, season)
		return roster.TeamRoster{}, nil
	}

	// November sits inside the season that started the same year.
	clock := &fakeClock{now: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)}
	svc := team.New(games, rosters, metrics.NewMock(), team.Config{Clock: clock.Now})
	_, _, err := svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)

	// March belongs to the season that started the previous year.
	clock = &fakeClock{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	svc = team.New(games, rosters, metrics.NewMock(), team.Config{Clock: clock.Now})
	_, _, err = svc.Roster(context.Background(), "Los Angeles Lakers")
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-26", "2025-26"}, seasons)
}
