package api

import (
	"encoding/json"
	"net/http"

	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/models/dtos/requests"
	"cosmoport/shipyard/internal/models/dtos/responses"
	"cosmoport/shipyard/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListShipsHandler handles GET /rest/ships
// Filters by the criteria query params, then sorts and pages the matches.
func (h *Handlers) ListShipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := &queryParser{values: r.URL.Query()}
		criteria := parseShipCriteria(p)
		display := parseDisplayParams(p)
		if p.err != nil {
			respondWithServiceError(w, r, p.err)
			return
		}

		ships, err := h.deps.Services.Ships.ListFiltered(r.Context(), criteria)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		if len(ships) == 0 {
			respondWithError(w, http.StatusNotFound, services.ErrorKindNotFound, constants.MsgNoShipsMatch)
			return
		}

		page := h.deps.Services.Ships.Display(ships, display.order, display.pageNumber, display.pageSize)
		data := responses.FromShips(page)
		respondWithSuccess(w, http.StatusOK, &data)
	}
}

// CountShipsHandler handles GET /rest/ships/count
func (h *Handlers) CountShipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := &queryParser{values: r.URL.Query()}
		criteria := parseShipCriteria(p)
		if p.err != nil {
			respondWithServiceError(w, r, p.err)
			return
		}

		count, err := h.deps.Services.Ships.Count(r.Context(), criteria)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &count)
	}
}

// GetShipHandler handles GET /rest/ships/{id}
func (h *Handlers) GetShipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := services.ParseShipID(chi.URLParam(r, "id"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		ship, err := h.deps.Services.Ships.GetByID(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		data := responses.FromShip(*ship)
		respondWithSuccess(w, http.StatusOK, &data)
	}
}

// CreateShipHandler handles POST /rest/ships
func (h *Handlers) CreateShipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ShipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, services.ErrorKindValidation, constants.MsgInvalidJSON)
			return
		}

		ship, err := h.deps.Services.Ships.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		data := responses.FromShip(*ship)
		respondWithSuccess(w, http.StatusOK, &data)
	}
}

// UpdateShipHandler handles POST /rest/ships/{id}
// Only the fields present in the body are changed.
func (h *Handlers) UpdateShipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := services.ParseShipID(chi.URLParam(r, "id"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		var req requests.ShipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, services.ErrorKindValidation, constants.MsgInvalidJSON)
			return
		}

		ship, err := h.deps.Services.Ships.Update(r.Context(), req, id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		data := responses.FromShip(*ship)
		respondWithSuccess(w, http.StatusOK, &data)
	}
}

// DeleteShipHandler handles DELETE /rest/ships/{id}
func (h *Handlers) DeleteShipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := services.ParseShipID(chi.URLParam(r, "id"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		if err := h.deps.Services.Ships.Delete(r.Context(), id); err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}
