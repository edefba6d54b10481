package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cosmoport/shipyard/internal/common"
	"cosmoport/shipyard/internal/models/entities"
)

// Pinger is satisfied by *sql.DB and *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthCheckTimeout = 3 * time.Second

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db Pinger, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)

		// Check postgres
		pgStatus := "ok"
		pgDetails := "Postgres Connected"
		if err := db.PingContext(ctx); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["postgres"] = entities.ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		if cache != nil {
			cacheStatus := "ok"
			cacheDetails := "Cache reachable"
			if err := cache.Ping(ctx); err != nil {
				cacheStatus = "down"
				cacheDetails = err.Error()
			}
			services["cache"] = entities.ServiceStatus{
				Status:  cacheStatus,
				Details: cacheDetails,
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince.UTC(),
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
