package dto

// StatusResponse is the contractual shape for every mutating endpoint:
// the front end only ever reads success + message.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) StatusResponse {
	return StatusResponse{Success: true, Message: message}
}

func Fail(message string) StatusResponse {
	return StatusResponse{Success: false, Message: message}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
