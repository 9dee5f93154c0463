package roster

import "strings"

// The stats provider identifies teams by its own numeric ids, unrelated to
// the games provider's ids. The directory is static: franchise ids do not
// change.
var teamDirectory = map[string]int{
	"atlanta hawks":          1610612737,
	"boston celtics":         1610612738,
	"brooklyn nets":          1610612751,
	"charlotte hornets":      1610612766,
	"chicago bulls":          1610612741,
	"cleveland cavaliers":    1610612739,
	"dallas mavericks":       1610612742,
	"denver nuggets":         1610612743,
	"detroit pistons":        1610612765,
	"golden state warriors":  1610612744,
	"houston rockets":        1610612745,
	"indiana pacers":         1610612754,
	"la clippers":            1610612746,
	"los angeles clippers":   1610612746,
	"los angeles lakers":     1610612747,
	"memphis grizzlies":      1610612763,
	"miami heat":             1610612748,
	"milwaukee bucks":        1610612749,
	"minnesota timberwolves": 1610612750,
	"new orleans pelicans":   1610612740,
	"new york knicks":        1610612752,
	"oklahoma city thunder":  1610612760,
	"orlando magic":          1610612753,
	"philadelphia 76ers":     1610612755,
	"phoenix suns":           1610612756,
	"portland trail blazers": 1610612757,
	"sacramento kings":       1610612758,
	"san antonio spurs":      1610612759,
	"toronto raptors":        1610612761,
	"utah jazz":              1610612762,
	"washington wizards":     1610612764,
}

// LookupTeamID resolves a team's full name to the stats provider's id.
// Matching is case-insensitive and exact.
func LookupTeamID(fullName string) (int, bool) {
	id, ok := teamDirectory[strings.ToLower(strings.TrimSpace(fullName))]
	return id, ok
}
