package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/user/eventos-go/apperror"
)

// DecodeJSON decodes a request body into dst. An empty body is not an error:
// the DTO stays zero-valued and the validation layer reports the missing
// fields, matching the behavior of the original request pipeline.
func DecodeJSON(r *http.Request, dst interface{}) *apperror.AppError {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.NewValidationError("Dados de requisição inválidos!", err)
	}
	return nil
}

// WriteJSON serializes data to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"errors":["failed to encode response"]}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized `{"errors": [...]}`
// response. Errors that are not *apperror.AppError are wrapped as internal
// errors so nothing is silently swallowed, and server-side failures are
// logged with their underlying cause.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Houve um erro, por favor tente mais tarde!", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
