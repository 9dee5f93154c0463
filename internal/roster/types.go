package roster

// Player is one decoded player row of a team roster.
// Height and Weight keep the provider's imperial strings ("6-9", "250");
// conversion to metric happens at format time.
type Player struct {
	Name     string
	Jersey   string
	Position string
	Height   string
	Weight   string
	Age      int
}

// Coach is one decoded coach row.
type Coach struct {
	Name string
	Role string
}

// TeamRoster bundles both sections of one roster fetch.
type TeamRoster struct {
	Players []Player
	Coaches []Coach
}

// The provider answers with positional row-sets: a list of header names and
// a list of rows whose cells line up with those headers by index. Decoding
// into typed structs happens here and nowhere else.
type rosterResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string  `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Positional field indexes of the two row-sets. These track the provider's
// column order, the single fragile contract this package isolates.
const (
	playerNameIdx     = 3
	playerJerseyIdx   = 6
	playerPositionIdx = 7
	playerHeightIdx   = 8
	playerWeightIdx   = 9
	playerAgeIdx      = 11

	coachNameIdx = 5
	coachRoleIdx = 7
)

// Row-set order within the response payload.
const (
	playersSetIdx = 0
	coachesSetIdx = 1
)
