package team

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/cache"
	"github.com/veskov/courtside/internal/metrics"
	"github.com/veskov/courtside/internal/roster"
)

// Query windows and caps for the games operations.
const (
	daysAhead  = 30
	daysBack   = 30
	gamesLimit = 5
)

// Cache kinds, used both as key prefixes and metric labels.
const (
	kindTeamID   = "team-id"
	kindUpcoming = "upcoming"
	kindRecent   = "recent"
	kindRoster   = "roster"
)

const (
	providerGames  = "balldontlie"
	providerRoster = "nba-stats"
)

// Config carries the tunables of the fetch layer.
type Config struct {
	// Season in the roster provider's "2025-26" form; empty derives it
	// from the clock.
	Season    string
	GamesTTL  time.Duration
	RosterTTL time.Duration
	// Clock is overridable for tests. Nil means time.Now.
	Clock func() time.Time
}

type service struct {
	games   bdl.GamesClient
	rosters roster.RosterClient
	metrics metrics.Metrics
	now     func() time.Time

	season    string
	gamesTTL  time.Duration
	rosterTTL time.Duration

	// Team ids never change, so the id cache has no TTL. The other two
	// follow the configured freshness windows.
	ids         *cache.Store[int]
	gamesCache  *cache.Store[[]bdl.Game]
	rosterCache *cache.Store[roster.TeamRoster]
}

var _ TeamService = (*service)(nil)

// New creates a TeamService backed by the two upstream clients.
func New(games bdl.GamesClient, rosters roster.RosterClient, metricsSvc metrics.Metrics, cfg Config) TeamService {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	gamesTTL := cfg.GamesTTL
	if gamesTTL <= 0 {
		gamesTTL = 300 * time.Second
	}
	rosterTTL := cfg.RosterTTL
	if rosterTTL <= 0 {
		rosterTTL = 600 * time.Second
	}
	return &service{
		games:       games,
		rosters:     rosters,
		metrics:     metricsSvc,
		now:         now,
		season:      cfg.Season,
		gamesTTL:    gamesTTL,
		rosterTTL:   rosterTTL,
		ids:         cache.New[int](now),
		gamesCache:  cache.New[[]bdl.Game](now),
		rosterCache: cache.New[roster.TeamRoster](now),
	}
}

// ResolveTeamID looks the team up in the permanent id cache, then in the
// provider's team directory. Every failure path caches fallbackID so that
// repeated failures stop hitting the network; the id it returns is always
// usable and the error, when set, is a warning rather than a stop.
func (s *service) ResolveTeamID(ctx context.Context, name string, fallbackID int) (int, error) {
	key := strings.ToLower(name)
	if id, ok := s.ids.Fresh(key, 0); ok {
		s.metrics.IncCacheHit(kindTeamID)
		return id, nil
	}
	s.metrics.IncCacheMiss(kindTeamID)

	s.metrics.IncUpstreamRequest(providerGames)
	teams, err := s.games.ListTeams(ctx)
	if err != nil {
		s.metrics.IncUpstreamFailure(providerGames)
		log.Warn("Failed to fetch team directory, using fallback id", "team", name, "fallbackID", fallbackID, "error", err)
		s.ids.Put(key, fallbackID)
		return fallbackID, fmt.Errorf("failed to fetch team id for %s: %w", name, err)
	}

	for _, t := range teams {
		if strings.EqualFold(t.FullName, name) {
			s.ids.Put(key, t.ID)
			return t.ID, nil
		}
	}

	// The directory answered but the name is not in it. This is its own
	// branch, not an upstream error.
	log.Warn("Team not found in provider directory, using fallback id", "team", name, "fallbackID", fallbackID)
	s.ids.Put(key, fallbackID)
	return fallbackID, fmt.Errorf("no team named %q in provider directory", name)
}

// UpcomingGames returns games in [today, today+30d], capped at 5.
func (s *service) UpcomingGames(ctx context.Context, teamID int) ([]bdl.Game, error) {
	today := s.now()
	return s.gamesWindow(ctx, kindUpcoming, teamID, today, today.AddDate(0, 0, daysAhead))
}

// RecentGames returns games in [today-30d, today], capped at 5.
func (s *service) RecentGames(ctx context.Context, teamID int) ([]bdl.Game, error) {
	today := s.now()
	return s.gamesWindow(ctx, kindRecent, teamID, today.AddDate(0, 0, -daysBack), today)
}

func (s *service) gamesWindow(ctx context.Context, kind string, teamID int, start, end time.Time) ([]bdl.Game, error) {
	key := kind + ":" + strconv.Itoa(teamID)
	if games, ok := s.gamesCache.Fresh(key, s.gamesTTL); ok {
		s.metrics.IncCacheHit(kind)
		return games, nil
	}
	s.metrics.IncCacheMiss(kind)

	s.metrics.IncUpstreamRequest(providerGames)
	games, err := s.games.GamesBetween(ctx, teamID, start, end, gamesLimit)
	if err != nil {
		s.metrics.IncUpstreamFailure(providerGames)
		log.Error("Failed to fetch games", "kind", kind, "teamID", teamID, "error", err)
		// A failed refresh contributes nothing: any stale entry stays
		// until the next successful fetch replaces it.
		return nil, fmt.Errorf("error fetching %s games: %w", kind, err)
	}

	s.gamesCache.Put(key, games)
	return games, nil
}

// Roster returns the team's players and coaches, cached per team name.
func (s *service) Roster(ctx context.Context, teamName string) ([]roster.Player, []roster.Coach, error) {
	key := strings.ToLower(teamName)
	if r, ok := s.rosterCache.Fresh(key, s.rosterTTL); ok {
		s.metrics.IncCacheHit(kindRoster)
		return r.Players, r.Coaches, nil
	}
	s.metrics.IncCacheMiss(kindRoster)

	id, ok := roster.LookupTeamID(teamName)
	if !ok {
		return nil, nil, fmt.Errorf("unknown team %q in roster directory", teamName)
	}

	s.metrics.IncUpstreamRequest(providerRoster)
	r, err := s.rosters.TeamRoster(ctx, id, s.currentSeason())
	if err != nil {
		s.metrics.IncUpstreamFailure(providerRoster)
		log.Error("Failed to fetch roster", "team", teamName, "error", err)
		return nil, nil, fmt.Errorf("error fetching roster for %s: %w", teamName, err)
	}

	s.rosterCache.Put(key, r)
	return r.Players, r.Coaches, nil
}

// currentSeason derives the roster provider's season label from the clock
// when no season is configured. Seasons roll over in October.
func (s *service) currentSeason() string {
	if s.season != "" {
		return s.season
	}
	now := s.now()
	startYear := now.Year()
	if now.Month() < time.October {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}
