package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL = "https://api.balldontlie.io/v1"
	// The provider must never leave a request hung: every call is bounded
	// by this timeout. Retries are a caller concern and there are none.
	requestTimeout = 5 * time.Second
)

// Config controls how the client reaches the balldontlie API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// APIClient is the HTTP implementation of GamesClient.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ GamesClient = (*APIClient)(nil)

// NewClient creates a balldontlie client. A nil HTTPClient gets a client
// with the fixed request timeout applied.
func NewClient(cfg Config) *APIClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &APIClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// ListTeams fetches the full team directory.
func (c *APIClient) ListTeams(ctx context.Context) ([]Team, error) {
	var payload teamsResponse
	if err := c.get(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}

	teams := make([]Team, 0, len(payload.Data))
	for _, t := range payload.Data {
		teams = append(teams, Team{ID: t.ID, FullName: t.FullName})
	}
	log.Debug("Fetched team directory", "count", len(teams))
	return teams, nil
}

// GamesBetween fetches games the team participates in within [start, end],
// capped at limit results.
func (c *APIClient) GamesBetween(ctx context.Context, teamID int, start, end time.Time, limit int) ([]Game, error) {
	params := map[string]string{
		"team_ids[]": strconv.Itoa(teamID),
		"start_date": start.Format("2006-01-02"),
		"end_date":   end.Format("2006-01-02"),
		"per_page":   strconv.Itoa(limit),
	}

	var payload gamesResponse
	if err := c.get(ctx, "/games", params, &payload); err != nil {
		return nil, err
	}

	games := make([]Game, 0, len(payload.Data))
	for _, g := range payload.Data {
		game, err := mapGame(g)
		if err != nil {
			log.Warn("Skipping game with unparseable date", "gameID", g.ID, "date", g.Date)
			continue
		}
		games = append(games, game)
	}
	log.Debug("Fetched games", "teamID", teamID, "count", len(games))
	return games, nil
}

func (c *APIClient) get(ctx context.Context, path string, params map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error("Received non-OK HTTP status from balldontlie API", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("balldontlie: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mapGame converts a wire game into the domain model. The provider has
// returned both plain dates and full timestamps over time, so both layouts
// are accepted.
func mapGame(g gameResponse) (Game, error) {
	date, err := parseGameDate(g.Date)
	if err != nil {
		return Game{}, err
	}
	return Game{
		ID:               g.ID,
		Date:             date,
		HomeTeam:         Team{ID: g.HomeTeam.ID, FullName: g.HomeTeam.FullName},
		VisitorTeam:      Team{ID: g.VisitorTeam.ID, FullName: g.VisitorTeam.FullName},
		HomeTeamScore:    g.HomeTeamScore,
		VisitorTeamScore: g.VisitorTeamScore,
	}, nil
}

func parseGameDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized game date %q", raw)
}
