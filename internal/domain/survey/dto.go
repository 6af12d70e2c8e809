package survey

type SubmitSurveyDTO struct {
	ProjectID uint           `json:"project_id" binding:"required"`
	Rating    int            `json:"rating" binding:"required,min=1,max=5"`
	Data      map[string]any `json:"data"`
}
