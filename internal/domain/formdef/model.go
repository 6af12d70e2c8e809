package formdef

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// FormDefinition is the stored row for one form schema. The topic tree is kept
// as a JSON document so admins can edit definitions without a migration.
type FormDefinition struct {
	ID            uint           `gorm:"primaryKey;column:fd_id" json:"fd_id"`
	Key           string         `gorm:"size:50;not null;unique" json:"key"`
	Label         string         `gorm:"size:100;not null" json:"label"`
	HasSignatures bool           `gorm:"default:false" json:"has_signatures"`
	Position      int            `gorm:"default:0" json:"position"`
	Topics        datatypes.JSON `gorm:"type:jsonb" json:"topics"`
	CreatedAt     time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt     time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (FormDefinition) TableName() string {
	return "form_definitions"
}

// Schema decodes the stored topic tree into an interpretable Definition.
func (fd *FormDefinition) Schema() (Definition, error) {
	def := Definition{
		Key:           fd.Key,
		Label:         fd.Label,
		HasSignatures: fd.HasSignatures,
	}
	if len(fd.Topics) == 0 {
		return def, nil
	}
	if err := json.Unmarshal(fd.Topics, &def.Topics); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// SetSchema encodes a topic tree back into the row.
func (fd *FormDefinition) SetSchema(topics []Topic) error {
	raw, err := json.Marshal(topics)
	if err != nil {
		return err
	}
	fd.Topics = datatypes.JSON(raw)
	return nil
}
