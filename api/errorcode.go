package api

import "github.com/acadmate/acadmate-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "the account has been suspended",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: "account not found",
		1102: store.ErrInvalidCredentials.Error(),
		1103: "this action is not allowed for the account role",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrRequestUnavailable.Error(),
		1202: "operation is not legal from the current request state",
		1203: store.ErrNotParticipant.Error(),
		1204: store.ErrHelperNotFound.Error(),
		1205: store.ErrMessageNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorAccountSuspended           = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)
	errorRoleNotAllowed     = errorJSON(1103)

	errorRequestNotFound    = errorJSON(1200)
	errorRequestUnavailable = errorJSON(1201)
	errorInvalidState       = errorJSON(1202)
	errorNotParticipant     = errorJSON(1203)
	errorHelperNotFound     = errorJSON(1204)
	errorMessageNotFound    = errorJSON(1205)
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
