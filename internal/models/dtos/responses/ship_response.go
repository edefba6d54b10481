package responses

import "cosmoport/shipyard/internal/models/entities"

type ShipResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Planet   string            `json:"planet"`
	ShipType entities.ShipType `json:"shipType"`
	ProdDate int64             `json:"prodDate"`
	IsUsed   bool              `json:"isUsed"`
	Speed    float64           `json:"speed"`
	CrewSize int               `json:"crewSize"`
	Rating   float64           `json:"rating"`
}

func FromShip(s entities.Ship) ShipResponse {
	return ShipResponse{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: s.ShipType,
		ProdDate: s.ProdDate.UnixMilli(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	}
}

func FromShips(ships []entities.Ship) []ShipResponse {
	out := make([]ShipResponse, 0, len(ships))
	for _, s := range ships {
		out = append(out, FromShip(s))
	}
	return out
}
