package repositories

import (
	"context"

	"cosmoport/shipyard/internal/models/entities"
)

// ShipStore is the persistence boundary for ships.
type ShipStore interface {
	// FindAll returns every ship ordered by id.
	FindAll(ctx context.Context) ([]entities.Ship, error)

	// FindByID returns nil and no error when the ship does not exist.
	FindByID(ctx context.Context, id int64) (*entities.Ship, error)

	// Save inserts ship when its ID is zero and updates it otherwise.
	// The returned ship carries the assigned ID.
	Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error)

	Delete(ctx context.Context, ship *entities.Ship) error
}
