package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	svcErr := &ServiceError{Status: status, kind: statusSentinel(status)}

	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		svcErr.Reason = payload.Error
		svcErr.Message = payload.Message
	}

	return svcErr
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}
