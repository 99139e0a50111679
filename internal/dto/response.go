package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse confirms an operation that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports server and store status.
type HealthResponse struct {
	ServerStatus   string `json:"serverStatus"`
	StoreStatus    string `json:"storeStatus"`
	StoreBackend   string `json:"storeBackend"`
	GratitudeLimit int    `json:"gratitudeLimit"` // 0 means unlimited
	Timestamp      string `json:"timestamp"`
}
