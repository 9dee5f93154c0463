package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/metrics"
	"github.com/veskov/courtside/internal/notifier"
	"github.com/veskov/courtside/internal/roster"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles rendering and sending bot replies to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	now       func() time.Time
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metricsSvc metrics.Metrics) *Notifier {
	api := slack.New(token)
	return NewNotifierWithAPI(api, channelID, metricsSvc)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls or pin the clock.
func NewNotifierWithAPI(api slackClient, channelID string, metricsSvc metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metricsSvc,
		now:       time.Now,
	}
}

// WithClock overrides the reference clock used for date rendering.
func (s *Notifier) WithClock(now func() time.Time) *Notifier {
	s.now = now
	return s
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface

func (s *Notifier) SendDailyDigest(upcoming, recent []bdl.Game, teamID int, dryRun bool) error {
	msg := s.formatDailyDigest(upcoming, recent, teamID)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatGreetingResponse formats the /start reply.
func (s *Notifier) FormatGreetingResponse(teamName string) (any, error) {
	return s.formatGreeting(teamName), nil
}

// FormatUpcomingResponse formats the upcoming-games list for a slash command response.
func (s *Notifier) FormatUpcomingResponse(games []bdl.Game, teamID int, warn error) (any, error) {
	return s.formatGamesList(upcomingHeading, games, teamID, warn, false), nil
}

// FormatResultsResponse formats the recent-results list for a slash command response.
func (s *Notifier) FormatResultsResponse(games []bdl.Game, teamID int, warn error) (any, error) {
	return s.formatGamesList(resultsHeading, games, teamID, warn, true), nil
}

// FormatRosterResponse formats the roster block for a slash command response.
func (s *Notifier) FormatRosterResponse(players []roster.Player, coaches []roster.Coach) (any, error) {
	return s.formatRoster(players, coaches), nil
}
