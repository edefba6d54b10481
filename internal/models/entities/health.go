package entities

import "time"

// ServiceStatus is the state of one dependency of the registry, keyed as
// "postgres" or "cache" in HealthCheckResponse.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is the body of GET /healthCheck. Status is "ok" only
// when every entry in Services is up.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
}
