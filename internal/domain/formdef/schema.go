package formdef

import (
	"fmt"
	"strings"
	"time"
)

type InputType string

const (
	InputText     InputType = "text"
	InputTextarea InputType = "textarea"
	InputDate     InputType = "date"
	InputCheckbox InputType = "checkbox"
	InputSelect   InputType = "select"
	InputNumber   InputType = "number"
)

var knownInputTypes = map[InputType]bool{
	InputText:     true,
	InputTextarea: true,
	InputDate:     true,
	InputCheckbox: true,
	InputSelect:   true,
	InputNumber:   true,
}

// Definition is the interpretable form schema: an ordered tree of topics where
// leaves bind to payload fields.
type Definition struct {
	Key           string  `json:"key" yaml:"key"`
	Label         string  `json:"label" yaml:"label"`
	HasSignatures bool    `json:"hasSignatures" yaml:"hasSignatures"`
	Topics        []Topic `json:"topics" yaml:"topics"`
}

// Topic is a numbered section. It is either itself a leaf field (FieldKey set,
// no sub-topics) or a container of SubTopic leaves. The interpreter tolerates
// both being set but only one is exercised per topic in practice.
type Topic struct {
	No        string     `json:"no" yaml:"no"`
	Title     string     `json:"topic" yaml:"topic"`
	Details   string     `json:"details,omitempty" yaml:"details,omitempty"`
	FieldKey  string     `json:"fieldKey,omitempty" yaml:"fieldKey,omitempty"`
	InputType InputType  `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Options   []string   `json:"options,omitempty" yaml:"options,omitempty"`
	Required  bool       `json:"required,omitempty" yaml:"required,omitempty"`
	SubTopics []SubTopic `json:"subTopics,omitempty" yaml:"subTopics,omitempty"`
}

// SubTopic is always a leaf field.
type SubTopic struct {
	No        string    `json:"no" yaml:"no"`
	Title     string    `json:"topic" yaml:"topic"`
	Details   string    `json:"details,omitempty" yaml:"details,omitempty"`
	FieldKey  string    `json:"fieldKey" yaml:"fieldKey"`
	InputType InputType `json:"inputType" yaml:"inputType"`
	Options   []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Required  bool      `json:"required,omitempty" yaml:"required,omitempty"`
}

// Field is one renderable control in the flattened plan.
type Field struct {
	No        string    `json:"no"`
	Section   string    `json:"section"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	FieldKey  string    `json:"field_key"`
	InputType InputType `json:"input_type"`
	Options   []string  `json:"options,omitempty"`
	Required  bool      `json:"required"`
	ReadOnly  bool      `json:"read_only"`
}

// RiskIDFieldKey is always read-only and auto-populated by the server.
const RiskIDFieldKey = "riskId"

// Signature block keys required when HasSignatures is set.
var SignatureFieldKeys = []string{"signName", "signPosition", "signDepartment", "signDate"}

// Fields flattens the topic tree into the ordered render plan. A topic with
// sub-topics contributes one control per sub-topic under its section header; a
// leaf topic contributes a single control under its own header.
func (d Definition) Fields() []Field {
	var fields []Field
	for _, t := range d.Topics {
		if len(t.SubTopics) > 0 {
			for _, st := range t.SubTopics {
				fields = append(fields, Field{
					No:        st.No,
					Section:   t.Title,
					Title:     st.Title,
					Details:   st.Details,
					FieldKey:  st.FieldKey,
					InputType: st.InputType,
					Options:   st.Options,
					Required:  st.Required,
					ReadOnly:  st.FieldKey == RiskIDFieldKey,
				})
			}
			continue
		}
		if t.FieldKey != "" {
			fields = append(fields, Field{
				No:        t.No,
				Section:   t.Title,
				Title:     t.Title,
				Details:   t.Details,
				FieldKey:  t.FieldKey,
				InputType: t.InputType,
				Options:   t.Options,
				Required:  t.Required,
				ReadOnly:  t.FieldKey == RiskIDFieldKey,
			})
		}
	}
	return fields
}

// Validate checks the schema shape: keys present, input types known, options
// supplied for selects, no duplicate field keys.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Key) == "" {
		return fmt.Errorf("form definition key is empty")
	}
	seen := map[string]bool{}
	for _, f := range d.Fields() {
		if strings.TrimSpace(f.FieldKey) == "" {
			return fmt.Errorf("form %s: field %s has no field key", d.Key, f.No)
		}
		if seen[f.FieldKey] {
			return fmt.Errorf("form %s: duplicate field key %q", d.Key, f.FieldKey)
		}
		seen[f.FieldKey] = true
		if !knownInputTypes[f.InputType] {
			return fmt.Errorf("form %s: field %q has unknown input type %q", d.Key, f.FieldKey, f.InputType)
		}
		if f.InputType == InputSelect && len(f.Options) == 0 {
			return fmt.Errorf("form %s: select field %q has no options", d.Key, f.FieldKey)
		}
	}
	return nil
}

// ValidatePayload rejects unknown keys and values that do not fit the declared
// input type. Payloads are validated at the write boundary rather than trusted.
func (d Definition) ValidatePayload(data map[string]any) error {
	allowed := map[string]InputType{}
	for _, f := range d.Fields() {
		allowed[f.FieldKey] = f.InputType
	}
	if d.HasSignatures {
		for _, k := range SignatureFieldKeys {
			allowed[k] = InputText
		}
	}
	for key, val := range data {
		typ, ok := allowed[key]
		if !ok {
			return fmt.Errorf("form %s: unknown field %q", d.Key, key)
		}
		if val == nil {
			continue
		}
		switch typ {
		case InputCheckbox:
			if _, ok := val.(bool); !ok {
				return fmt.Errorf("form %s: field %q expects a boolean", d.Key, key)
			}
		case InputNumber:
			switch val.(type) {
			case float64, int, int64:
			default:
				return fmt.Errorf("form %s: field %q expects a number", d.Key, key)
			}
		default:
			if _, ok := val.(string); !ok {
				return fmt.Errorf("form %s: field %q expects a string", d.Key, key)
			}
		}
	}
	return nil
}

// IsComplete reports whether every required field is present and non-empty.
// When the schema declares signatures, the whole signature block must also be
// populated.
func (d Definition) IsComplete(data map[string]any) bool {
	for _, f := range d.Fields() {
		if !f.Required {
			continue
		}
		if !present(data[f.FieldKey]) {
			return false
		}
	}
	if d.HasSignatures {
		for _, k := range SignatureFieldKeys {
			if !present(data[k]) {
				return false
			}
		}
	}
	return true
}

func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// HasRiskID reports whether the schema declares the auto-populated risk id field.
func (d Definition) HasRiskID() bool {
	for _, f := range d.Fields() {
		if f.FieldKey == RiskIDFieldKey {
			return true
		}
	}
	return false
}

// EnsureRiskID populates the risk id once when absent. The id reuses the
// trailing digits of the current Unix millisecond clock; ids generated within
// the same truncation window can collide, which is accepted behavior.
func (d Definition) EnsureRiskID(data map[string]any) {
	if !d.HasRiskID() {
		return
	}
	if present(data[RiskIDFieldKey]) {
		return
	}
	data[RiskIDFieldKey] = NewRiskID()
}

func NewRiskID() string {
	return fmt.Sprintf("RISK-%06d", time.Now().UnixMilli()%1_000_000)
}
