package requests

import "cosmoport/shipyard/internal/models/entities"

// ShipRequest is the create/update payload. A nil field was not supplied by the client.
// Field order matches the order constraint violations are reported in.
type ShipRequest struct {
	Name     *string            `json:"name" validate:"omitnil,min=1,max=50"`
	Planet   *string            `json:"planet" validate:"omitnil,min=1,max=50"`
	CrewSize *int               `json:"crewSize" validate:"omitnil,min=1,max=9999"`
	Speed    *float64           `json:"speed" validate:"omitnil,min=0.01,max=0.99"`
	ProdDate *int64             `json:"prodDate" validate:"omitnil,prodyear"` // epoch millis
	ShipType *entities.ShipType `json:"shipType" validate:"omitnil,shiptype"`
	IsUsed   *bool              `json:"isUsed"`
}

// ShipCriteria narrows a ship listing. Nil fields impose no constraint.
type ShipCriteria struct {
	Name        *string
	Planet      *string
	ShipType    *entities.ShipType
	After       *int64 // epoch millis, exclusive
	Before      *int64 // epoch millis, exclusive
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}
