package api

import (
	"fmt"
	"net/url"
	"strconv"

	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/models/dtos/requests"
	"cosmoport/shipyard/internal/models/entities"
	"cosmoport/shipyard/internal/services"
)

// queryParser collects the first malformed parameter and ignores the rest.
type queryParser struct {
	values url.Values
	err    error
}

func (p *queryParser) raw(key string) (string, bool) {
	if p.err != nil || !p.values.Has(key) {
		return "", false
	}
	return p.values.Get(key), true
}

func (p *queryParser) fail(key, raw string) {
	p.err = services.NewInvalidArgumentError(fmt.Sprintf("%s %s: %q", constants.MsgInvalidQueryParam, key, raw))
}

func (p *queryParser) String(key string) *string {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	return &raw
}

func (p *queryParser) Int(key string) *int {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &v
}

func (p *queryParser) Int64(key string) *int64 {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &v
}

func (p *queryParser) Float(key string) *float64 {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &v
}

func (p *queryParser) Bool(key string) *bool {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw)
		return nil
	}
	return &v
}

func (p *queryParser) ShipType(key string) *entities.ShipType {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	t, valid := entities.ParseShipType(raw)
	if !valid {
		p.fail(key, raw)
		return nil
	}
	return &t
}

func (p *queryParser) ShipOrder(key string) *entities.ShipOrder {
	raw, ok := p.raw(key)
	if !ok {
		return nil
	}
	o, valid := entities.ParseShipOrder(raw)
	if !valid {
		p.fail(key, raw)
		return nil
	}
	return &o
}

func parseShipCriteria(p *queryParser) requests.ShipCriteria {
	return requests.ShipCriteria{
		Name:        p.String("name"),
		Planet:      p.String("planet"),
		ShipType:    p.ShipType("shipType"),
		After:       p.Int64("after"),
		Before:      p.Int64("before"),
		IsUsed:      p.Bool("isUsed"),
		MinSpeed:    p.Float("minSpeed"),
		MaxSpeed:    p.Float("maxSpeed"),
		MinCrewSize: p.Int("minCrewSize"),
		MaxCrewSize: p.Int("maxCrewSize"),
		MinRating:   p.Float("minRating"),
		MaxRating:   p.Float("maxRating"),
	}
}

type displayParams struct {
	order      *entities.ShipOrder
	pageNumber *int
	pageSize   *int
}

func parseDisplayParams(p *queryParser) displayParams {
	return displayParams{
		order:      p.ShipOrder("order"),
		pageNumber: p.Int("pageNumber"),
		pageSize:   p.Int("pageSize"),
	}
}
