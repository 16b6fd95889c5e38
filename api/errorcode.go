package api

import (
	"github.com/bitmark-inc/corona-loader/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1010: "invalid parameters",

		1200: store.ErrNoTotals.Error(),
		1201: store.ErrLocationNotFound.Error(),

		1300: "no run finished yet",
		1301: "run did not complete",
	}

	errorInternalServer    = errorJSON(999)
	errorInvalidParameters = errorJSON(1010)

	errorNoTotals         = errorJSON(1200)
	errorLocationNotFound = errorJSON(1201)

	errorNoReport      = errorJSON(1300)
	errorRunIncomplete = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
