package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",

		1103: "region not found",
		1104: "dataset not ready",
		1105: "unknown rt dataset",
	}

	errorInternalServer    = errorJSON(999)
	errorInvalidParameters = errorJSON(1010)

	errorRegionNotFound   = errorJSON(1103)
	errorDatasetNotReady  = errorJSON(1104)
	errorUnknownRtDataset = errorJSON(1105)
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
