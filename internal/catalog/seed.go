package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/campustools/roomsense/internal/models"
)

var (
	seedDepartments  = []string{"CSE", "ECE", "ME", "CE", "EEE"}
	seedEquipment    = []string{"Projector", "Smart Board", "Lab PCs", "3D Printer", "Audio", "AC"}
	seedBuildings    = []string{"A", "B", "C"}
	seedFloors       = 3
	seedRoomsPerWing = 6

	// Share of rooms that start with an occupied live signal
	seedOccupiedRate = 0.3
)

// Seed generates the demo catalog: three buildings, three floors, six
// rooms each, with a fixed two-slot timetable on the given day and a
// randomized starting live signal drawn from rng.
func Seed(day time.Time, rng *rand.Rand) *Catalog {
	y, m, d := day.Date()
	loc := day.Location()

	timetable := models.Timetable{
		{Start: time.Date(y, m, d, 10, 0, 0, 0, loc), End: time.Date(y, m, d, 12, 0, 0, 0, loc), Label: "CSE101"},
		{Start: time.Date(y, m, d, 14, 0, 0, 0, loc), End: time.Date(y, m, d, 15, 30, 0, 0, loc), Label: "ECE210"},
	}

	var rooms []*models.Room
	signals := make(map[string]models.LiveSignal)

	id := 1
	for _, b := range seedBuildings {
		for f := 1; f <= seedFloors; f++ {
			for r := 1; r <= seedRoomsPerWing; r++ {
				roomID := fmt.Sprintf("%d", id)
				id++

				rooms = append(rooms, &models.Room{
					ID:         roomID,
					Name:       fmt.Sprintf("Bldg %s • %d0%d", b, f, r),
					Building:   fmt.Sprintf("Building %s", b),
					Floor:      f,
					Department: seedDepartments[(f+r)%len(seedDepartments)],
					Capacity:   20 + ((f*10 + r*5) % 120),
					Equipment: []string{
						seedEquipment[r%len(seedEquipment)],
						seedEquipment[(r+2)%len(seedEquipment)],
					},
					Timetable: timetable,
				})

				if rng.Float64() < seedOccupiedRate {
					signals[roomID] = models.SignalOccupied
				}
			}
		}
	}

	return New(rooms, signals)
}
