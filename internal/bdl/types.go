package bdl

import "time"

// Team is one entry of the provider's team directory.
type Team struct {
	ID       int
	FullName string
}

// Game is one scheduled or completed match involving the tracked team.
// Scores are zero until the game has been played. Immutable once fetched;
// a fresher fetch supersedes the whole slice.
type Game struct {
	ID               int
	Date             time.Time
	HomeTeam         Team
	VisitorTeam      Team
	HomeTeamScore    int
	VisitorTeamScore int
}

type teamsResponse struct {
	Data []teamResponse `json:"data"`
}

type gamesResponse struct {
	Data []gameResponse `json:"data"`
}

type teamResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

type gameResponse struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
}
