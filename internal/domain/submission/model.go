package submission

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type FormStatus string

const (
	// StatusNotStarted is virtual: it is never persisted and is inferred by
	// the absence of a submission row.
	StatusNotStarted    FormStatus = "Not Started"
	StatusDraft         FormStatus = "Draft"
	StatusPendingReview FormStatus = "Pending Review"
	StatusApproved      FormStatus = "Approved"
	StatusRejected      FormStatus = "Rejected"
	StatusCompleted     FormStatus = "Completed"
)

// PersistedStatuses are the values a stored row may carry.
var PersistedStatuses = []FormStatus{
	StatusDraft,
	StatusPendingReview,
	StatusApproved,
	StatusRejected,
	StatusCompleted,
}

func ValidPersistedStatus(s FormStatus) bool {
	for _, v := range PersistedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// FormSubmission is the single stored instance of a form for one project. The
// composite unique index enforces at most one row per (project, form); a
// re-submission overwrites the row rather than appending.
type FormSubmission struct {
	ID          uint           `gorm:"primaryKey;column:fs_id" json:"fs_id"`
	ProjectID   uint           `gorm:"not null;uniqueIndex:idx_project_form" json:"project_id"`
	FormKey     string         `gorm:"size:50;not null;uniqueIndex:idx_project_form" json:"form_key"`
	Status      FormStatus     `gorm:"size:20;not null" json:"status"`
	Data        datatypes.JSON `gorm:"type:jsonb" json:"data"`
	SubmittedBy string         `gorm:"size:50" json:"submitted_by"`
	ReviewedBy  string         `gorm:"size:50" json:"reviewed_by"`
	SubmittedAt *time.Time     `json:"submitted_at"`
	ReviewedAt  *time.Time     `json:"reviewed_at"`
	Comments    string         `gorm:"type:text" json:"comments"`
	CreatedAt   time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

// Payload decodes the stored key→value record.
func (s *FormSubmission) Payload() (map[string]any, error) {
	data := map[string]any{}
	if len(s.Data) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(s.Data, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// SetPayload encodes the key→value record back into the row.
func (s *FormSubmission) SetPayload(data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.Data = datatypes.JSON(raw)
	return nil
}
