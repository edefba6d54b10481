package gorm

import (
	"time"

	"cosmoport/shipyard/internal/models/entities"
)

type Ship struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string    `gorm:"column:name;size:50;not null"`
	Planet   string    `gorm:"column:planet;size:50;not null"`
	ShipType string    `gorm:"column:ship_type;size:16;not null;index"`
	ProdDate time.Time `gorm:"column:prod_date;not null"`
	IsUsed   bool      `gorm:"column:is_used;not null"`
	Speed    float64   `gorm:"column:speed;not null"`
	CrewSize int       `gorm:"column:crew_size;not null"`
	Rating   float64   `gorm:"column:rating;not null"`
}

// TableName specifies the table name for GORM
func (Ship) TableName() string {
	return "ships"
}

func ShipFromEntity(s *entities.Ship) Ship {
	return Ship{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: string(s.ShipType),
		ProdDate: s.ProdDate.UTC(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	}
}

func (m Ship) ToEntity() entities.Ship {
	return entities.Ship{
		ID:       m.ID,
		Name:     m.Name,
		Planet:   m.Planet,
		ShipType: entities.ShipType(m.ShipType),
		ProdDate: m.ProdDate.UTC(),
		IsUsed:   m.IsUsed,
		Speed:    m.Speed,
		CrewSize: m.CrewSize,
		Rating:   m.Rating,
	}
}
