package api

// Handlers serves the /rest/ships endpoints from the ship service and
// metrics held in deps.
type Handlers struct {
	deps *Dependencies
}

func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}
