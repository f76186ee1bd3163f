package constants

// Standard Response Field Keys
const (
	ResponseFieldStatus  = "status"
	ResponseFieldMessage = "message"
	ResponseFieldMsg     = "msg"
	ResponseFieldErrors  = "errors"
)

// Response Status Values
const (
	ResponseStatusSuccess = "success"
	ResponseStatusError   = "error"
)

// MsgServerError is the only message unexpected failures are allowed to
// surface; internal details never reach the client.
const MsgServerError = "Server error, please try again"

// BuildSuccessResponse builds the `{status:"success", ...payload}` envelope.
func BuildSuccessResponse(payload map[string]any) map[string]any {
	response := map[string]any{
		ResponseFieldStatus: ResponseStatusSuccess,
	}

	for key, value := range payload {
		response[key] = value
	}

	return response
}

// BuildDomainErrorResponse builds the `{msg: <string>}` envelope used for
// domain failures surfaced at 400.
func BuildDomainErrorResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldMsg: message,
	}
}

// BuildServerErrorResponse builds the generic 500 envelope.
func BuildServerErrorResponse() map[string]any {
	return map[string]any{
		ResponseFieldStatus:  ResponseStatusError,
		ResponseFieldMessage: MsgServerError,
	}
}

// BuildValidationErrorResponse builds the 422 envelope: one entry per failed
// field, keyed by the JSON field name.
func BuildValidationErrorResponse(fieldErrors []map[string]string) map[string]any {
	return map[string]any{
		ResponseFieldErrors: fieldErrors,
	}
}
