package api

import (
	"encoding/json"
	"net/http"
	"time"

	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/logging"
	"cosmoport/shipyard/internal/models/dtos/responses"
	"cosmoport/shipyard/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, kind services.ErrorKind, message string) {
	resp := responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		ErrorKind: string(kind),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

var statusByKind = map[services.ErrorKind]int{
	services.ErrorKindValidation:      http.StatusBadRequest,
	services.ErrorKindInvalidArgument: http.StatusBadRequest,
	services.ErrorKindNotFound:        http.StatusNotFound,
	services.ErrorKindInternal:        http.StatusInternalServerError,
}

// respondWithServiceError maps a service error onto its HTTP status. Internal
// details are logged, not returned.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := services.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logging.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondWithError(w, status, services.ErrorKindInternal, constants.MsgInternalError)
		return
	}

	respondWithError(w, status, kind, err.Error())
}
