package slack_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/metrics"
	internalslack "github.com/veskov/courtside/internal/notifier/slack"
	"github.com/veskov/courtside/internal/roster"
)

const lakersID = 14

var (
	lakers  = bdl.Team{ID: lakersID, FullName: "Los Angeles Lakers"}
	celtics = bdl.Team{ID: 2, FullName: "Boston Celtics"}
)

func fixedClock() time.Time {
	return time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
}

func blockTexts(t *testing.T, msg any) string {
	t.Helper()
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	return string(raw)
}

func TestFormatUpcomingResponse(t *testing.T) {
	notif := internalslack.NewNotifierWithAPI(nil, "C123", metrics.NewMock()).WithClock(fixedClock)

	games := []bdl.Game{{
		ID:          1,
		Date:        time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		HomeTeam:    lakers,
		VisitorTeam: celtics,
	}}

	msg, err := notif.FormatUpcomingResponse(games, lakersID, nil)
	require.NoError(t, err)

	raw := blockTexts(t, msg)
	assert.Contains(t, raw, "Nov 14 | H | vs Boston Celtics")
	assert.Contains(t, raw, "Ближайшие матчи")
}

func TestFormatUpcomingResponse_WarningShownAboveData(t *testing.T) {
	notif := internalslack.NewNotifierWithAPI(nil, "C123", metrics.NewMock()).WithClock(fixedClock)

	msg, err := notif.FormatUpcomingResponse(nil, lakersID, errors.New("используется дефолтный ID команды"))
	require.NoError(t, err)

	raw := blockTexts(t, msg)
	assert.Contains(t, raw, "⚠️")
	assert.Contains(t, raw, "дефолтный ID")
	assert.Contains(t, raw, "нет данных")
}

func TestFormatResultsResponse(t *testing.T) {
	notif := internalslack.NewNotifierWithAPI(nil, "C123", metrics.NewMock()).WithClock(fixedClock)

	games := []bdl.Game{{
		ID:               1,
		Date:             time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		HomeTeam:         lakers,
		VisitorTeam:      celtics,
		HomeTeamScore:    110,
		VisitorTeamScore: 102,
	}}

	msg, err := notif.FormatResultsResponse(games, lakersID, nil)
	require.NoError(t, err)
	assert.Contains(t, blockTexts(t, msg), "Win 110-102 vs Boston Celtics")
}

func TestFormatRosterResponse(t *testing.T) {
	notif := internalslack.NewNotifierWithAPI(nil, "C123", metrics.NewMock()).WithClock(fixedClock)

	players := []roster.Player{{Name: "LeBron James", Jersey: "23", Position: "F", Height: "6-9", Weight: "250", Age: 40}}

	msg, err := notif.FormatRosterResponse(players, nil)
	require.NoError(t, err)

	raw := blockTexts(t, msg)
	assert.Contains(t, raw, "LeBron James | #23 | F | 2.06 м, 113 кг | 40 лет")
	assert.Contains(t, raw, "Тренерский штаб")
}

func TestFormatGreetingResponse(t *testing.T) {
	notif := internalslack.NewNotifierWithAPI(nil, "C123", metrics.NewMock()).WithClock(fixedClock)

	msg, err := notif.FormatGreetingResponse("Los Angeles Lakers")
	require.NoError(t, err)

	raw := blockTexts(t, msg)
	assert.Contains(t, raw, "Привет")
	assert.Contains(t, raw, "Los Angeles Lakers")
}

func TestSendDailyDigest(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))
		assert.Equal(t, "C123", vals.Get("channel"))
		assert.Contains(t, vals.Get("blocks"), "Дайджест")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slackapi.New("test-token", slackapi.OptionAPIURL(srv.URL+"/"))
	metricsMock := metrics.NewMock()
	notif := internalslack.NewNotifierWithAPI(api, "C123", metricsMock).WithClock(fixedClock)

	err := notif.SendDailyDigest(nil, nil, lakersID, false)
	require.NoError(t, err)
	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metricsMock.SlackNotifSent())
}

func TestSendDailyDigest_DryRun(t *testing.T) {
	handlerCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))
	defer srv.Close()

	api := slackapi.New("test-token", slackapi.OptionAPIURL(srv.URL+"/"))
	metricsMock := metrics.NewMock()
	notif := internalslack.NewNotifierWithAPI(api, "C123", metricsMock).WithClock(fixedClock)

	err := notif.SendDailyDigest(nil, nil, lakersID, true)
	require.NoError(t, err)
	assert.False(t, handlerCalled, "Expected http handler NOT to be called in dry run")
	assert.Equal(t, 0, metricsMock.SlackNotifSent())
}
