package transport

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"product-catalog/internal/middleware"
	"product-catalog/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("id must be an integer")

// statusForError maps repository errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrReviewTargetNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrProductAlreadyExists),
		errors.Is(err, repository.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalidValue):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes the error envelope for a failed service call.
// Internal errors are logged and hidden behind a generic message.
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error, message string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(message, zap.Error(err))
		middleware.RespondWithError(w, status, message)
		return
	}

	logger.Debug(message, zap.Error(err), zap.Int("status", status))
	middleware.RespondWithError(w, status, err.Error())
}

// decodeRequest decodes and validates the body into v, answering 400 on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	err := middleware.DecodeAndValidate(r, v)
	if err == nil {
		return true
	}

	logger.Debug("Request validation failed", zap.Error(err))

	if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return false
	}

	middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// pathID reads an integer URL parameter. Anything that is not an integer is a
// 400. Integers outside the id column's range (1..MaxInt32) cannot name a row,
// so they answer notFound as a 404.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			middleware.RespondWithErrorDetails(w, http.StatusBadRequest, errInvalidID.Error(), map[string]interface{}{
				"param": name,
			})
			return 0, false
		}
	}
	if err != nil || id <= 0 || id > math.MaxInt32 {
		middleware.RespondWithError(w, http.StatusNotFound, notFound.Error())
		return 0, false
	}
	return id, true
}
