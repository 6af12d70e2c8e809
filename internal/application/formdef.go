package application

import (
	_ "embed"
	"errors"
	"log"

	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

//go:embed forms.yaml
var builtinFormsYAML []byte

var ErrFormDefNotFound = errors.New("form definition not found")

type FormDefService struct {
	Repos *repository.Repos
}

func NewFormDefService(repos *repository.Repos) *FormDefService {
	return &FormDefService{Repos: repos}
}

func (s *FormDefService) ListDefinitions() ([]formdef.FormDefinition, error) {
	return s.Repos.FormDef.ListDefinitions()
}

func (s *FormDefService) GetByKey(key string) (formdef.FormDefinition, error) {
	fd, err := s.Repos.FormDef.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formdef.FormDefinition{}, ErrFormDefNotFound
		}
		return formdef.FormDefinition{}, err
	}
	return fd, nil
}

// UpdateDefinition edits a stored schema. The new topic tree is validated
// before it replaces the old one.
func (s *FormDefService) UpdateDefinition(key string, input formdef.UpdateFormDefinitionDTO) (*formdef.FormDefinition, error) {
	fd, err := s.GetByKey(key)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		fd.Label = *input.Label
	}
	if input.HasSignatures != nil {
		fd.HasSignatures = *input.HasSignatures
	}
	if input.Position != nil {
		fd.Position = *input.Position
	}
	if input.Topics != nil {
		if err := fd.SetSchema(input.Topics); err != nil {
			return nil, err
		}
	}

	def, err := fd.Schema()
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repos.FormDef.Save(&fd); err != nil {
		return nil, err
	}
	return &fd, nil
}

// SeedBuiltinForms loads the embedded form set when the table is empty. Keys
// are unique across the loaded set; re-running is a no-op.
func (s *FormDefService) SeedBuiltinForms() error {
	n, err := s.Repos.FormDef.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var seed struct {
		Forms []formdef.Definition `yaml:"forms"`
	}
	if err := yaml.Unmarshal(builtinFormsYAML, &seed); err != nil {
		return err
	}

	for i, def := range seed.Forms {
		if err := def.Validate(); err != nil {
			return err
		}
		fd := formdef.FormDefinition{
			Key:           def.Key,
			Label:         def.Label,
			HasSignatures: def.HasSignatures,
			Position:      i,
		}
		if err := fd.SetSchema(def.Topics); err != nil {
			return err
		}
		if err := s.Repos.FormDef.Save(&fd); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d builtin form definitions", len(seed.Forms))
	return nil
}
