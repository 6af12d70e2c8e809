package attachment

import "time"

// Attachment is one evidence file uploaded against a project form. File bytes
// live in object storage; the row keeps the object key and metadata.
type Attachment struct {
	ID          uint      `gorm:"primaryKey;column:att_id" json:"att_id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	FormKey     string    `gorm:"size:50;not null;index" json:"form_key"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:255;not null;unique" json:"object_key"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `gorm:"size:50" json:"uploaded_by"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
