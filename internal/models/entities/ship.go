package entities

import "time"

type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// Valid reports whether t belongs to the closed set of ship types.
func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

func ParseShipType(s string) (ShipType, bool) {
	t := ShipType(s)
	return t, t.Valid()
}

// ShipOrder selects the field a ship listing is sorted by.
type ShipOrder string

const (
	ShipOrderID       ShipOrder = "ID"
	ShipOrderSpeed    ShipOrder = "SPEED"
	ShipOrderProdDate ShipOrder = "PROD_DATE"
	ShipOrderRating   ShipOrder = "RATING"
)

// ParseShipOrder maps a query value onto a ShipOrder. An empty value selects ShipOrderID.
func ParseShipOrder(s string) (ShipOrder, bool) {
	switch o := ShipOrder(s); o {
	case "":
		return ShipOrderID, true
	case ShipOrderID, ShipOrderSpeed, ShipOrderProdDate, ShipOrderRating:
		return o, true
	}
	return "", false
}

type Ship struct {
	ID       int64     `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Planet   string    `db:"planet" json:"planet"`
	ShipType ShipType  `db:"ship_type" json:"shipType"`
	ProdDate time.Time `db:"prod_date" json:"prodDate"`
	IsUsed   bool      `db:"is_used" json:"isUsed"`
	Speed    float64   `db:"speed" json:"speed"`
	CrewSize int       `db:"crew_size" json:"crewSize"`
	Rating   float64   `db:"rating" json:"rating"`
}
