package dto

// UpdateAutoApproveRequest payload.
type UpdateAutoApproveRequest struct {
	Enabled *bool `json:"enabled"`
}

// AutoApproveResponse reports the flag state.
type AutoApproveResponse struct {
	Enabled bool `json:"enabled"`
}
