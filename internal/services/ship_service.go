package services

import (
	"context"
	"sync"
	"time"

	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/db/repositories"
	"cosmoport/shipyard/internal/logging"
	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/models/dtos/requests"
	"cosmoport/shipyard/internal/models/entities"
)

const mutationLockStripes = 64

type ShipService struct {
	store     repositories.ShipStore
	validator *ShipValidator
	metrics   *metrics.MetricsRegistry

	// Update and Delete on the same id run one at a time.
	locks [mutationLockStripes]sync.Mutex
}

func NewShipService(store repositories.ShipStore, m *metrics.MetricsRegistry) *ShipService {
	return &ShipService{
		store:     store,
		validator: NewShipValidator(),
		metrics:   m,
	}
}

func (s *ShipService) lockFor(id int64) *sync.Mutex {
	return &s.locks[uint64(id)%mutationLockStripes]
}

// GetByID returns the ship with the given id.
func (s *ShipService) GetByID(ctx context.Context, id int64) (*entities.Ship, error) {
	if err := checkShipID(id); err != nil {
		return nil, err
	}
	return s.findExisting(ctx, id)
}

func (s *ShipService) findExisting(ctx context.Context, id int64) (*entities.Ship, error) {
	ship, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, wrapInternal("failed to load ship", err)
	}
	if ship == nil {
		logging.Debug("Ship not found", "ship_id", id)
		return nil, NewNotFoundError(constants.MsgShipNotFound)
	}
	return ship, nil
}

// ListFiltered returns every stored ship matching criteria, unpaginated and in store order.
func (s *ShipService) ListFiltered(ctx context.Context, criteria requests.ShipCriteria) ([]entities.Ship, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, wrapInternal("failed to load ships", err)
	}

	matched := Filter(all, criteria)
	s.metrics.ObserveShipsListed(len(matched))
	logging.Debug("Filtered ships", "total", len(all), "matched", len(matched))
	return matched, nil
}

func (s *ShipService) Count(ctx context.Context, criteria requests.ShipCriteria) (int, error) {
	matched, err := s.ListFiltered(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// Display sorts and paginates an already filtered list. Nil arguments take the
// listing defaults: order by id, page 0, page size 3.
func (s *ShipService) Display(ships []entities.Ship, order *entities.ShipOrder, pageNumber, pageSize *int) []entities.Ship {
	o := entities.ShipOrderID
	if order != nil {
		o = *order
	}
	page := constants.DefaultPageNumber
	if pageNumber != nil {
		page = *pageNumber
	}
	size := constants.DefaultPageSize
	if pageSize != nil {
		size = *pageSize
	}

	return Paginate(Sort(ships, o), page, size)
}

// Create validates req, fills in defaults and the rating, and stores a new ship.
func (s *ShipService) Create(ctx context.Context, req requests.ShipRequest) (*entities.Ship, error) {
	if err := s.validator.ValidateForCreate(req); err != nil {
		return nil, err
	}

	ship := MergeShip(entities.Ship{}, req)
	ship.Rating = CalculateRating(ship.Speed, ship.IsUsed, ship.ProdDate)

	saved, err := s.store.Save(ctx, &ship)
	if err != nil {
		return nil, wrapInternal("failed to create ship", err)
	}

	s.metrics.IncShipMutation("create")
	logging.Info("Ship created", "ship_id", saved.ID, "ship_type", saved.ShipType, "rating", saved.Rating)
	return saved, nil
}

// Update applies the fields present in req to the ship with the given id and
// recomputes its rating.
func (s *ShipService) Update(ctx context.Context, req requests.ShipRequest, id int64) (*entities.Ship, error) {
	if err := checkShipID(id); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateFieldConstraints(req); err != nil {
		return nil, err
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := MergeShip(*existing, req)
	merged.Rating = CalculateRating(merged.Speed, merged.IsUsed, merged.ProdDate)

	saved, err := s.store.Save(ctx, &merged)
	if err != nil {
		return nil, wrapInternal("failed to update ship", err)
	}

	s.metrics.IncShipMutation("update")
	logging.Info("Ship updated", "ship_id", saved.ID, "rating", saved.Rating)
	return saved, nil
}

func (s *ShipService) Delete(ctx context.Context, id int64) error {
	if err := checkShipID(id); err != nil {
		return err
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, existing); err != nil {
		return wrapInternal("failed to delete ship", err)
	}

	s.metrics.IncShipMutation("delete")
	logging.Info("Ship deleted", "ship_id", id)
	return nil
}

// MergeShip returns existing with every field present in req overwritten.
// The id and rating are never taken from req.
func MergeShip(existing entities.Ship, req requests.ShipRequest) entities.Ship {
	merged := existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Planet != nil {
		merged.Planet = *req.Planet
	}
	if req.ShipType != nil {
		merged.ShipType = *req.ShipType
	}
	if req.ProdDate != nil {
		merged.ProdDate = time.UnixMilli(*req.ProdDate).UTC()
	}
	if req.IsUsed != nil {
		merged.IsUsed = *req.IsUsed
	}
	if req.Speed != nil {
		merged.Speed = *req.Speed
	}
	if req.CrewSize != nil {
		merged.CrewSize = *req.CrewSize
	}
	return merged
}
