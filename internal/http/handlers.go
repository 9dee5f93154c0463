package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
	"github.com/veskov/courtside/internal/bdl"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// asSlackMsg narrows the notifier's provider-agnostic response to a Slack
// message, writing a 500 on mismatch.
func asSlackMsg(w http.ResponseWriter, msg any) (slack.Message, bool) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return slack.Message{}, false
	}
	return slackMsg, true
}

// StartCommandHandler returns a handler for the /start Slack command.
func (s *Server) StartCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncCommandReceived("start")

		msg, err := s.Notifier.FormatGreetingResponse(s.Cfg.Team.Name)
		if err != nil {
			http.Error(w, "Failed to format greeting", http.StatusInternalServerError)
			log.Error("Failed to format greeting", "error", err)
			return
		}

		if slackMsg, ok := asSlackMsg(w, msg); ok {
			respondWithSlackMsg(w, slackMsg)
		}
	}
}

// UpcomingCommandHandler returns a handler for the /upcoming Slack command.
func (s *Server) UpcomingCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncCommandReceived("upcoming")
		games, teamID, warn := s.fetchGames(r, false)

		msg, err := s.Notifier.FormatUpcomingResponse(games, teamID, warn)
		if err != nil {
			http.Error(w, "Failed to format upcoming games", http.StatusInternalServerError)
			log.Error("Failed to format upcoming games", "error", err)
			return
		}

		if slackMsg, ok := asSlackMsg(w, msg); ok {
			respondWithSlackMsg(w, slackMsg)
		}
	}
}

// ResultsCommandHandler returns a handler for the /results Slack command.
func (s *Server) ResultsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncCommandReceived("results")
		games, teamID, warn := s.fetchGames(r, true)

		msg, err := s.Notifier.FormatResultsResponse(games, teamID, warn)
		if err != nil {
			http.Error(w, "Failed to format results", http.StatusInternalServerError)
			log.Error("Failed to format results", "error", err)
			return
		}

		if slackMsg, ok := asSlackMsg(w, msg); ok {
			respondWithSlackMsg(w, slackMsg)
		}
	}
}

// RosterCommandHandler returns a handler for the /roster Slack command.
func (s *Server) RosterCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncCommandReceived("roster")

		players, coaches, err := s.Team.Roster(r.Context(), s.Cfg.Team.Name)
		if err != nil {
			// Hard failures still answer: the formatter renders the
			// empty sections as plain no-data placeholders.
			log.Error("Failed to fetch roster", "team", s.Cfg.Team.Name, "error", err)
		}

		msg, err := s.Notifier.FormatRosterResponse(players, coaches)
		if err != nil {
			http.Error(w, "Failed to format roster", http.StatusInternalServerError)
			log.Error("Failed to format roster", "error", err)
			return
		}

		if slackMsg, ok := asSlackMsg(w, msg); ok {
			respondWithSlackMsg(w, slackMsg)
		}
	}
}

// DailyDigestHandler pushes the combined upcoming/results digest to the fan
// channel. Meant to be hit by a scheduler.
func (s *Server) DailyDigestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		teamID := s.teamID(r)

		upcoming, err := s.Team.UpcomingGames(r.Context(), teamID)
		if err != nil {
			log.Error("Failed to fetch upcoming games for digest", "error", err)
		}
		recent, err := s.Team.RecentGames(r.Context(), teamID)
		if err != nil {
			log.Error("Failed to fetch recent games for digest", "error", err)
		}

		if err := s.Notifier.SendDailyDigest(upcoming, recent, teamID, isDryRun); err != nil {
			http.Error(w, "Failed to send digest", http.StatusInternalServerError)
			log.Error("Failed to send digest", "error", err)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Digest sent.")
	}
}

// teamID resolves the configured team's provider id, falling back to the
// configured fallback id. Resolution warnings are logged here; the command
// handlers surface them to the user separately via fetchGames.
func (s *Server) teamID(r *http.Request) int {
	id, warn := s.Team.ResolveTeamID(r.Context(), s.Cfg.Team.Name, s.Cfg.Team.FallbackID)
	if warn != nil {
		log.Warn("Team id resolution degraded", "team", s.Cfg.Team.Name, "warning", warn)
	}
	return id
}

// fetchGames runs one games query end to end: id resolution plus the window
// fetch. The returned warning is what the user should see; fetch errors are
// logged and collapse to an empty, no-data answer.
func (s *Server) fetchGames(r *http.Request, played bool) ([]bdl.Game, int, error) {
	id, warn := s.Team.ResolveTeamID(r.Context(), s.Cfg.Team.Name, s.Cfg.Team.FallbackID)

	var (
		games []bdl.Game
		err   error
	)
	if played {
		games, err = s.Team.RecentGames(r.Context(), id)
	} else {
		games, err = s.Team.UpcomingGames(r.Context(), id)
	}
	if err != nil {
		log.Error("Failed to fetch games", "team", s.Cfg.Team.Name, "played", played, "error", err)
	}
	return games, id, warn
}
