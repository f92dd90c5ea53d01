package response

type CreateUserResponse struct {
	ID string `json:"id"`
}

type SubmitResponse struct {
	ID            string `json:"id"`
	PointsAwarded int    `json:"points_awarded"`
}

type RedeemResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SeedResponse struct {
	Status string `json:"status"`
	Seeded bool   `json:"seeded"`
	Count  int64  `json:"count"`
}

type HealthResponse struct {
	Message          string   `json:"message"`
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
