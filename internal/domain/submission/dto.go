package submission

type SavePayloadDTO struct {
	Data map[string]any `json:"data" binding:"required"`
}

type ReviewDTO struct {
	Comments string `json:"comments"`
}

type OverrideStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

// StatusEntry pairs a form key with its effective status for one project.
type StatusEntry struct {
	FormKey string     `json:"form_key"`
	Label   string     `json:"label"`
	Status  FormStatus `json:"status"`
}
