package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

// ErrorCollector is satisfied by the metrics collector; wiring it is
// optional.
type ErrorCollector interface {
	RecordError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeInternal
	message := "internal error"
	var fields map[string]string

	var typed *common.Error
	if errors.As(err, &typed) {
		code = typed.Code
		message = typed.Message
		fields = typed.Fields
	}
	if errorCollector != nil {
		errorCollector.RecordError(string(code))
	}
	JSON(w, statusFor(code), errorBody{Error: errorDetail{
		Code:    string(code),
		Message: message,
		Fields:  fields,
	}})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeEligibility:
		return http.StatusUnprocessableEntity
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
