package response

type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Error(err string) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Error:  err,
	}
}

func ErrorWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   err,
		Details: details,
	}
}
