package models

import "strings"

// Room represents a bookable room with a static timetable.
// Everything here is immutable after catalog construction; the live
// occupancy signal is tracked separately by the catalog.
type Room struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Building   string    `json:"building"`
	Floor      int       `json:"floor"`
	Department string    `json:"department"`
	Capacity   int       `json:"capacity"`
	Equipment  []string  `json:"equipment"`
	Timetable  Timetable `json:"timetable"`
}

// MatchesQuery reports whether the room matches a free-text search over
// its name, building, department and equipment tags.
func (r *Room) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	blob := strings.ToLower(r.Name + " " + r.Building + " " + r.Department + " " + strings.Join(r.Equipment, " "))
	return strings.Contains(blob, strings.ToLower(query))
}
