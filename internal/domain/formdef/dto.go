package formdef

type UpdateFormDefinitionDTO struct {
	Label         *string `json:"label" binding:"omitempty,max=100"`
	HasSignatures *bool   `json:"has_signatures"`
	Position      *int    `json:"position"`
	Topics        []Topic `json:"topics"`
}
