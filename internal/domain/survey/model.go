package survey

import (
	"time"

	"gorm.io/datatypes"
)

// SatisfactionSurvey captures post-engagement feedback for a project.
type SatisfactionSurvey struct {
	ID         uint           `gorm:"primaryKey;column:ss_id" json:"ss_id"`
	ProjectID  uint           `gorm:"not null;index" json:"project_id"`
	Respondent string         `gorm:"size:50;not null" json:"respondent"`
	Rating     int            `gorm:"not null" json:"rating"`
	Data       datatypes.JSON `gorm:"type:jsonb" json:"data"`
	CreatedAt  time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (SatisfactionSurvey) TableName() string {
	return "satisfaction_surveys"
}
