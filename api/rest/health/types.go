package health

const (
	StatusHealthy = "healthy"
	Version       = "1.0.0"
	Message       = "WePoker Game Server is running"
)

// Status is the data payload of the health envelope
type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
