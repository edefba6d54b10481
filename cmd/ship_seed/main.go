package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"cosmoport/shipyard/internal/config"
	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/models/entities"
	"cosmoport/shipyard/internal/services"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	flag "github.com/spf13/pflag"
)

type seedShip struct {
	name     string
	planet   string
	shipType entities.ShipType
	year     int
	isUsed   bool
	speed    float64
	crewSize int
}

var fleet = []seedShip{
	{"Orion III", "Mars", entities.ShipTypeMerchant, 2995, true, 0.82, 617},
	{"Daedalus", "Jupiter", entities.ShipTypeTransport, 3001, false, 0.94, 1014},
	{"Eagle Transporter", "Earth", entities.ShipTypeTransport, 2988, true, 0.79, 4527},
	{"Nostromo", "Saturn", entities.ShipTypeMerchant, 2981, true, 0.76, 1513},
	{"Serenity", "Mercury", entities.ShipTypeMilitary, 3019, false, 0.5, 42},
}

func main() {
	configName := flag.String("config", "", "config file name without extension")
	flag.Parse()

	cfg, err := config.Load(*configName)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	insert := sqlx.Rebind(sqlx.DOLLAR, constants.InsertShip)

	for _, s := range fleet {
		prodDate := time.Date(s.year, time.January, 1, 0, 0, 0, 0, time.UTC)
		rating := services.CalculateRating(s.speed, s.isUsed, prodDate)

		var id int64
		if err := db.QueryRow(insert,
			s.name, s.planet, s.shipType, prodDate, s.isUsed, s.speed, s.crewSize, rating,
		).Scan(&id); err != nil {
			log.Fatalf("insert ship %q: %v", s.name, err)
		}

		fmt.Printf("Seeded ship %d: %s (rating %.2f)\n", id, s.name, rating)
	}
}
