package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/store"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmptyPrompt:             http.StatusBadRequest,
	service.ErrUnsupportedLanguage:     http.StatusBadRequest,
	service.ErrCodeTooLarge:            http.StatusBadRequest,
	service.ErrUserMismatch:            http.StatusForbidden,
	service.ErrRateLimited:             http.StatusTooManyRequests,
	service.ErrDailyQuotaExceeded:      http.StatusTooManyRequests,
	service.ErrModelUnavailable:        http.StatusBadGateway,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorBody returns the "error" and "message" fields written for err.
// Quota and size errors use a machine code plus a hint, the rest a plain
// message.
func (h *Handler) errorBody(err error) (string, string) {
	switch {
	case errors.Is(err, service.ErrCodeTooLarge):
		return app.MsgCodeTooLarge, fmt.Sprintf(app.MsgCodeTooLargeHint, h.maxCodeLines)
	case errors.Is(err, service.ErrRateLimited):
		return app.MsgRateLimited, app.MsgRateLimitedHint
	case errors.Is(err, service.ErrDailyQuotaExceeded):
		return app.MsgDailyQuotaExceeded, app.MsgDailyQuotaExceededHint
	case errors.Is(err, service.ErrEmptyPrompt):
		return app.MsgEmptyPrompt, ""
	case errors.Is(err, service.ErrUnsupportedLanguage):
		return app.MsgUnsupportedLanguage, ""
	case errors.Is(err, service.ErrUserMismatch):
		return app.MsgUserMismatch, ""
	case errors.Is(err, service.ErrModelUnavailable):
		return app.MsgModelUnavailable, ""
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgCredentialsRequired, ""
	case errors.Is(err, service.ErrWrongPassword), errors.Is(err, store.ErrNoUserWasFound):
		return app.MsgInvalidLoginPassword, ""
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return app.MsgUsernameAlreadyExists, ""
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return app.MsgTokenIsExpiredOrInvalid, ""
	default:
		return app.MsgInternalServerError, ""
	}
}

// writeServiceError maps err to its status and body.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	errText, message := h.errorBody(err)
	utils.WriteError(w, statusFromError(err), errText, message)
}
