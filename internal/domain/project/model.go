package project

import "time"

type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// Project is one vendor engagement. Exactly one assessor and one reviewer are
// assigned; projects are never deleted.
type Project struct {
	PID         uint      `gorm:"primaryKey;column:p_id;autoIncrement" json:"p_id"`
	ProjectName string    `gorm:"size:100;not null" json:"project_name"`
	Description string    `gorm:"type:text" json:"description"`
	AssessorID  uint      `gorm:"not null;column:assessor_id" json:"assessor_id"`
	ReviewerID  uint      `gorm:"not null;column:reviewer_id" json:"reviewer_id"`
	Status      string    `gorm:"size:20;default:'In Progress'" json:"status"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Project) TableName() string {
	return "project_list"
}

func (p *Project) IsAssessor(uid uint) bool {
	return p.AssessorID == uid
}

func (p *Project) IsReviewer(uid uint) bool {
	return p.ReviewerID == uid
}
