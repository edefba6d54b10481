package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/models/entities"
	gormModels "cosmoport/shipyard/internal/models/gorm"

	"gorm.io/gorm"
)

type ShipRepositoryGORM struct {
	db      *gorm.DB
	metrics *metrics.MetricsRegistry
}

var _ ShipStore = (*ShipRepositoryGORM)(nil)

// NewShipRepositoryGORM creates a new GORM-based ship repository
func NewShipRepositoryGORM(db *gorm.DB, m *metrics.MetricsRegistry) *ShipRepositoryGORM {
	return &ShipRepositoryGORM{db: db, metrics: m}
}

// FindAll retrieves every ship ordered by id
func (r *ShipRepositoryGORM) FindAll(ctx context.Context) ([]entities.Ship, error) {
	start := time.Now()

	var rows []gormModels.Ship
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	r.metrics.ObserveStoreQuery("find_all", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ships: %w", err)
	}

	ships := make([]entities.Ship, 0, len(rows))
	for _, row := range rows {
		ships = append(ships, row.ToEntity())
	}
	return ships, nil
}

// FindByID retrieves a ship by primary key, returning nil when it does not exist
func (r *ShipRepositoryGORM) FindByID(ctx context.Context, id int64) (*entities.Ship, error) {
	start := time.Now()

	var row gormModels.Ship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.metrics.ObserveStoreQuery("find_by_id", start, nil)
		return nil, nil
	}
	r.metrics.ObserveStoreQuery("find_by_id", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ship %d: %w", id, err)
	}

	ship := row.ToEntity()
	return &ship, nil
}

// Save creates the ship when it has no id yet and overwrites every column otherwise
func (r *ShipRepositoryGORM) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	row := gormModels.ShipFromEntity(ship)

	queryType := "update"
	if row.ID == 0 {
		queryType = "insert"
	}

	start := time.Now()
	var err error
	if row.ID == 0 {
		err = r.db.WithContext(ctx).Create(&row).Error
	} else {
		err = r.db.WithContext(ctx).Save(&row).Error
	}
	r.metrics.ObserveStoreQuery(queryType, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to %s ship: %w", queryType, err)
	}

	saved := row.ToEntity()
	return &saved, nil
}

func (r *ShipRepositoryGORM) Delete(ctx context.Context, ship *entities.Ship) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Delete(&gormModels.Ship{}, ship.ID).Error
	r.metrics.ObserveStoreQuery("delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete ship %d: %w", ship.ID, err)
	}
	return nil
}
