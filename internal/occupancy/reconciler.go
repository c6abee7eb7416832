package occupancy

import (
	"math"
	"sort"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// RoomCorrection overwrites the cached occupancy fields of a single room
type RoomCorrection struct {
	RoomID           uint    `json:"room_id"`
	OccupantsActuels int     `json:"occupants_actuels"`
	ListeOccupants   []int64 `json:"liste_occupants"`
}

// SectorStats aggregates occupancy figures for one sector
type SectorStats struct {
	TotalActiveWorkers int  `json:"total_active_workers"`
	TotalRooms         int  `json:"total_rooms"`
	OccupiedRooms      int  `json:"occupied_rooms"`
	EmptyRooms         int  `json:"empty_rooms"`
	TotalCapacity      int  `json:"total_capacity"`
	TotalOccupied      int  `json:"total_occupied"`
	FreeCapacity       int  `json:"free_capacity"`
	OccupancyRate      int  `json:"occupancy_rate"`
	WorkersHommes      int  `json:"workers_hommes"`
	WorkersFemmes      int  `json:"workers_femmes"`
	RoomsHommes        int  `json:"rooms_hommes"`
	RoomsFemmes        int  `json:"rooms_femmes"`
	UnassignedWorkers  int  `json:"unassigned_workers"`
	OvercapacityRooms  int  `json:"overcapacity_rooms"`
	NeedsAttention     bool `json:"needs_attention"`
	WellUtilized       bool `json:"well_utilized"`
}

// Reconcile compares the cached occupancy of each room against the live set
// of active workers and returns the corrections needed plus sector totals.
//
// A correction is emitted for a room iff its cached occupant count differs
// from the true count. The occupant list is rewritten alongside the count but
// does not itself trigger a correction.
func Reconcile(workers []domain.Worker, rooms []domain.Room) ([]RoomCorrection, SectorStats) {
	var stats SectorStats

	// Group active, assigned workers by the room key they occupy. Rows with
	// an unknown gender never match a room and drop out of the grouping.
	groups := make(map[domain.RoomKey][]int64)
	for i := range workers {
		w := &workers[i]
		if !w.IsActive() {
			continue
		}
		stats.TotalActiveWorkers++
		switch w.Sexe {
		case domain.SexeHomme:
			stats.WorkersHommes++
		case domain.SexeFemme:
			stats.WorkersFemmes++
		}
		if w.Chambre == "" {
			stats.UnassignedWorkers++
			continue
		}
		label := w.GenderLabel()
		if label == "" {
			continue
		}
		key := domain.RoomKey{FermeID: w.FermeID, Numero: w.Chambre, Genre: label}
		groups[key] = append(groups[key], int64(w.ID))
	}

	var corrections []RoomCorrection
	for i := range rooms {
		room := &rooms[i]
		stats.TotalRooms++
		switch room.Genre {
		case domain.GenreHommes:
			stats.RoomsHommes++
		case domain.GenreFemmes:
			stats.RoomsFemmes++
		}

		occupants := groups[room.Key()]
		sort.Slice(occupants, func(a, b int) bool { return occupants[a] < occupants[b] })
		trueCount := len(occupants)

		if trueCount > 0 {
			stats.OccupiedRooms++
		} else {
			stats.EmptyRooms++
		}
		stats.TotalCapacity += room.CapaciteTotale
		if trueCount > room.CapaciteTotale {
			stats.TotalOccupied += room.CapaciteTotale
			stats.OvercapacityRooms++
		} else {
			stats.TotalOccupied += trueCount
		}

		if room.OccupantsActuels != trueCount {
			corrections = append(corrections, RoomCorrection{
				RoomID:           room.ID,
				OccupantsActuels: trueCount,
				ListeOccupants:   occupants,
			})
		}
	}

	stats.FreeCapacity = stats.TotalCapacity - stats.TotalOccupied
	stats.OccupancyRate = occupancyRate(stats.TotalOccupied, stats.TotalCapacity)
	stats.NeedsAttention = stats.UnassignedWorkers > 0 ||
		stats.OvercapacityRooms > 0 ||
		stats.OccupancyRate > 95
	stats.WellUtilized = stats.OccupancyRate >= 60 && stats.OccupancyRate <= 90

	return corrections, stats
}

// occupancyRate returns round(occupied/capacity*100), 0 when capacity is 0
func occupancyRate(occupied, capacity int) int {
	if capacity == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(capacity) * 100))
}
