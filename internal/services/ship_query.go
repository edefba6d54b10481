package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"cosmoport/shipyard/internal/models/dtos/requests"
	"cosmoport/shipyard/internal/models/entities"
)

type shipPredicate func(entities.Ship) bool

// shipPredicates builds the filter chain for c. Absent criteria contribute
// nothing, so an empty criteria yields an empty chain.
func shipPredicates(c requests.ShipCriteria) []shipPredicate {
	var preds []shipPredicate

	if c.Name != nil {
		name := *c.Name
		preds = append(preds, func(s entities.Ship) bool { return strings.Contains(s.Name, name) })
	}
	if c.Planet != nil {
		planet := *c.Planet
		preds = append(preds, func(s entities.Ship) bool { return strings.Contains(s.Planet, planet) })
	}
	if c.ShipType != nil {
		shipType := *c.ShipType
		preds = append(preds, func(s entities.Ship) bool { return s.ShipType == shipType })
	}
	if c.After != nil {
		after := time.UnixMilli(*c.After)
		preds = append(preds, func(s entities.Ship) bool { return s.ProdDate.After(after) })
	}
	if c.Before != nil {
		before := time.UnixMilli(*c.Before)
		preds = append(preds, func(s entities.Ship) bool { return s.ProdDate.Before(before) })
	}
	if c.IsUsed != nil {
		isUsed := *c.IsUsed
		preds = append(preds, func(s entities.Ship) bool { return s.IsUsed == isUsed })
	}
	if c.MinSpeed != nil {
		minSpeed := *c.MinSpeed
		preds = append(preds, func(s entities.Ship) bool { return s.Speed >= minSpeed })
	}
	if c.MaxSpeed != nil {
		maxSpeed := *c.MaxSpeed
		preds = append(preds, func(s entities.Ship) bool { return s.Speed <= maxSpeed })
	}
	if c.MinCrewSize != nil {
		minCrew := *c.MinCrewSize
		preds = append(preds, func(s entities.Ship) bool { return s.CrewSize >= minCrew })
	}
	if c.MaxCrewSize != nil {
		maxCrew := *c.MaxCrewSize
		preds = append(preds, func(s entities.Ship) bool { return s.CrewSize <= maxCrew })
	}
	if c.MinRating != nil {
		minRating := *c.MinRating
		preds = append(preds, func(s entities.Ship) bool { return s.Rating >= minRating })
	}
	if c.MaxRating != nil {
		maxRating := *c.MaxRating
		preds = append(preds, func(s entities.Ship) bool { return s.Rating <= maxRating })
	}

	return preds
}

// Filter returns the ships satisfying every criterion in c, preserving input order.
func Filter(ships []entities.Ship, c requests.ShipCriteria) []entities.Ship {
	preds := shipPredicates(c)

	out := make([]entities.Ship, 0, len(ships))
	for _, s := range ships {
		if matchesAll(s, preds) {
			out = append(out, s)
		}
	}
	return out
}

func matchesAll(s entities.Ship, preds []shipPredicate) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

var shipComparators = map[entities.ShipOrder]func(a, b entities.Ship) int{
	entities.ShipOrderID:       func(a, b entities.Ship) int { return cmp.Compare(a.ID, b.ID) },
	entities.ShipOrderSpeed:    func(a, b entities.Ship) int { return cmp.Compare(a.Speed, b.Speed) },
	entities.ShipOrderProdDate: func(a, b entities.Ship) int { return a.ProdDate.Compare(b.ProdDate) },
	entities.ShipOrderRating:   func(a, b entities.Ship) int { return cmp.Compare(a.Rating, b.Rating) },
}

// Sort returns a copy of ships in ascending order of the given field. Ties
// keep their input order. An unknown order sorts by id.
func Sort(ships []entities.Ship, order entities.ShipOrder) []entities.Ship {
	compare, ok := shipComparators[order]
	if !ok {
		compare = shipComparators[entities.ShipOrderID]
	}

	sorted := slices.Clone(ships)
	if sorted == nil {
		sorted = []entities.Ship{}
	}
	slices.SortStableFunc(sorted, compare)
	return sorted
}

// Paginate returns page pageNumber (zero based) of pageSize ships. Pages
// beyond the end, negative page numbers and non-positive sizes are empty.
func Paginate(ships []entities.Ship, pageNumber, pageSize int) []entities.Ship {
	if pageNumber < 0 || pageSize <= 0 {
		return []entities.Ship{}
	}
	if pageNumber > 0 && pageSize > len(ships)/pageNumber {
		return []entities.Ship{}
	}

	start := pageNumber * pageSize
	if start >= len(ships) {
		return []entities.Ship{}
	}
	end := min(start+pageSize, len(ships))
	return slices.Clone(ships[start:end])
}
