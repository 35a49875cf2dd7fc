package model

// HealthResponse is the body served on the root and health endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// StatusResponse is the body the connectivity probe consumes.
type StatusResponse struct {
	BackendStatus string `json:"backend_status"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}

// InfoResponse describes the API surface.
type InfoResponse struct {
	Name               string            `json:"name"`
	Version            string            `json:"version"`
	Description        string            `json:"description"`
	Endpoints          map[string]string `json:"endpoints"`
	FrontendConnection string            `json:"frontend_connection"`
	Timestamp          string            `json:"timestamp"`
}
