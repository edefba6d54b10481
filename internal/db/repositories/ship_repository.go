package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ShipRepository is the raw SQL ShipStore.
type ShipRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

var _ ShipStore = (*ShipRepository)(nil)

func NewShipRepository(db *sqlx.DB, m *metrics.MetricsRegistry) *ShipRepository {
	return &ShipRepository{db: db, metrics: m}
}

func (r *ShipRepository) FindAll(ctx context.Context) ([]entities.Ship, error) {
	start := time.Now()

	ships := []entities.Ship{}
	err := r.db.SelectContext(ctx, &ships, constants.SelectAllShips)
	r.metrics.ObserveStoreQuery("find_all", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to select ships: %w", err)
	}

	for i := range ships {
		ships[i].ProdDate = ships[i].ProdDate.UTC()
	}
	return ships, nil
}

func (r *ShipRepository) FindByID(ctx context.Context, id int64) (*entities.Ship, error) {
	start := time.Now()

	var ship entities.Ship
	err := r.db.GetContext(ctx, &ship, r.db.Rebind(constants.SelectShipByID), id)
	if errors.Is(err, sql.ErrNoRows) {
		r.metrics.ObserveStoreQuery("find_by_id", start, nil)
		return nil, nil
	}
	r.metrics.ObserveStoreQuery("find_by_id", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to select ship %d: %w", id, err)
	}

	ship.ProdDate = ship.ProdDate.UTC()
	return &ship, nil
}

func (r *ShipRepository) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	saved := *ship
	saved.ProdDate = saved.ProdDate.UTC()

	if saved.ID == 0 {
		start := time.Now()
		err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.InsertShip),
			saved.Name,
			saved.Planet,
			saved.ShipType,
			saved.ProdDate,
			saved.IsUsed,
			saved.Speed,
			saved.CrewSize,
			saved.Rating,
		).Scan(&saved.ID)
		r.metrics.ObserveStoreQuery("insert", start, err)
		if err != nil {
			return nil, fmt.Errorf("failed to insert ship: %w", err)
		}
		return &saved, nil
	}

	start := time.Now()
	res, err := r.db.ExecContext(ctx, r.db.Rebind(constants.UpdateShip),
		saved.Name,
		saved.Planet,
		saved.ShipType,
		saved.ProdDate,
		saved.IsUsed,
		saved.Speed,
		saved.CrewSize,
		saved.Rating,
		saved.ID,
	)
	r.metrics.ObserveStoreQuery("update", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update ship %d: %w", saved.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("failed to update ship %d: %w", saved.ID, sql.ErrNoRows)
	}
	return &saved, nil
}

func (r *ShipRepository) Delete(ctx context.Context, ship *entities.Ship) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.DeleteShipByID), ship.ID)
	r.metrics.ObserveStoreQuery("delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete ship %d: %w", ship.ID, err)
	}
	return nil
}
