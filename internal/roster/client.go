package roster

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
	defaultBaseURL = "https://stats.nba.com/stats"
	requestTimeout = 5 * time.Second
)

// Config controls how the client reaches the stats provider.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// APIClient is the HTTP implementation of RosterClient.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

var _ RosterClient = (*APIClient)(nil)

// NewClient creates a roster client. A nil HTTPClient gets a client with
// the fixed request timeout applied.
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
	}
}

// TeamRoster fetches and decodes both row-sets of a team's roster.
func (c *APIClient) TeamRoster(ctx context.Context, teamID int, season string) (TeamRoster, error) {
	url := fmt.Sprintf("%s/commonteamroster", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("TeamID", strconv.Itoa(teamID))
	q.Set("Season", season)
	q.Set("LeagueID", "00")
	req.URL.RawQuery = q.Encode()

	// The stats provider rejects requests without browser-looking headers.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://stats.nba.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	log.Debug("Requesting team roster", "teamID", teamID, "season", season)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error("Received non-OK HTTP status from stats provider", "status", resp.StatusCode, "body", string(body))
		return TeamRoster{}, fmt.Errorf("roster provider: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload rosterResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return TeamRoster{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return decodeRoster(payload)
}

// decodeRoster maps the positional row-sets into typed structs. Rows that
// are too short to carry the expected fields are skipped, not fatal.
func decodeRoster(payload rosterResponse) (TeamRoster, error) {
	if len(payload.ResultSets) <= coachesSetIdx {
		return TeamRoster{}, fmt.Errorf("roster provider: expected %d result sets, got %d", coachesSetIdx+1, len(payload.ResultSets))
	}

	var out TeamRoster
	for _, row := range payload.ResultSets[playersSetIdx].RowSet {
		if len(row) <= playerAgeIdx {
			log.Warn("Skipping short player row", "fields", len(row))
			continue
		}
		out.Players = append(out.Players, Player{
			Name:     cellString(row[playerNameIdx]),
			Jersey:   cellString(row[playerJerseyIdx]),
			Position: cellString(row[playerPositionIdx]),
			Height:   cellString(row[playerHeightIdx]),
			Weight:   cellString(row[playerWeightIdx]),
			Age:      cellInt(row[playerAgeIdx]),
		})
	}
	for _, row := range payload.ResultSets[coachesSetIdx].RowSet {
		if len(row) <= coachRoleIdx {
			log.Warn("Skipping short coach row", "fields", len(row))
			continue
		}
		out.Coaches = append(out.Coaches, Coach{
			Name: cellString(row[coachNameIdx]),
			Role: cellString(row[coachRoleIdx]),
		})
	}
	return out, nil
}

// cellString renders one row cell as a string. The provider mixes strings
// and numbers within a row.
func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellInt(cell any) int {
	switch v := cell.(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
