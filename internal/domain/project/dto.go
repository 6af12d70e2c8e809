package project

type CreateProjectDTO struct {
	ProjectName string `json:"project_name" binding:"required,max=100" example:"Acme Cloud Hosting"`
	Description string `json:"description" example:"Third party hosting engagement"`
	AssessorID  uint   `json:"assessor_id" binding:"required" example:"2"`
	ReviewerID  uint   `json:"reviewer_id" binding:"required" example:"3"`
}

type UpdateProjectDTO struct {
	ProjectName *string `json:"project_name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	AssessorID  *uint   `json:"assessor_id"`
	ReviewerID  *uint   `json:"reviewer_id"`
	Status      *string `json:"status" binding:"omitempty,oneof='In Progress' Completed"`
}
