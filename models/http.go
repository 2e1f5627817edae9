package models

// MessageResponse is the generic JSON body used for errors and simple
// acknowledgements: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileUpdateResponse is returned after a successful profile merge.
type ProfileUpdateResponse struct {
	Message     string  `json:"message"`
	ProfileData Profile `json:"profile_data"`
}

// MoodResponse is returned after a mood was logged.
type MoodResponse struct {
	Message string `json:"message"`
	Mood    Mood   `json:"mood"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
