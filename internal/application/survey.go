package application

import (
	"encoding/json"
	"errors"

	"github.com/itsd-lab/vendorgate/internal/domain/survey"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSurveyNotFound = errors.New("survey not found")

type SurveyService struct {
	Repos *repository.Repos
}

func NewSurveyService(repos *repository.Repos) *SurveyService {
	return &SurveyService{Repos: repos}
}

func (s *SurveyService) ListSurveys() ([]survey.SatisfactionSurvey, error) {
	return s.Repos.Survey.ListSurveys()
}

func (s *SurveyService) ListSurveysByProject(projectID uint) ([]survey.SatisfactionSurvey, error) {
	return s.Repos.Survey.ListSurveysByProject(projectID)
}

func (s *SurveyService) SubmitSurvey(respondent string, input survey.SubmitSurveyDTO) (*survey.SatisfactionSurvey, error) {
	if _, err := s.Repos.Project.GetProjectByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	sv := &survey.SatisfactionSurvey{
		ProjectID:  input.ProjectID,
		Respondent: respondent,
		Rating:     input.Rating,
	}
	if input.Data != nil {
		raw, err := json.Marshal(input.Data)
		if err != nil {
			return nil, err
		}
		sv.Data = datatypes.JSON(raw)
	}

	return sv, s.Repos.Survey.CreateSurvey(sv)
}

func (s *SurveyService) DeleteSurvey(id uint) error {
	return s.Repos.Survey.DeleteSurvey(id)
}
