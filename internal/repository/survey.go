package repository

import (
	"github.com/itsd-lab/vendorgate/internal/domain/survey"
	"gorm.io/gorm"
)

type SurveyRepo interface {
	ListSurveys() ([]survey.SatisfactionSurvey, error)
	ListSurveysByProject(projectID uint) ([]survey.SatisfactionSurvey, error)
	CreateSurvey(s *survey.SatisfactionSurvey) error
	DeleteSurvey(id uint) error
	WithTx(tx *gorm.DB) SurveyRepo
}

type DBSurveyRepo struct {
	db *gorm.DB
}

func NewSurveyRepo(db *gorm.DB) *DBSurveyRepo {
	return &DBSurveyRepo{db: db}
}

func (r *DBSurveyRepo) ListSurveys() ([]survey.SatisfactionSurvey, error) {
	var surveys []survey.SatisfactionSurvey
	err := r.db.Order("create_at desc").Find(&surveys).Error
	return surveys, err
}

func (r *DBSurveyRepo) ListSurveysByProject(projectID uint) ([]survey.SatisfactionSurvey, error) {
	var surveys []survey.SatisfactionSurvey
	err := r.db.Where("project_id = ?", projectID).Order("create_at desc").Find(&surveys).Error
	return surveys, err
}

func (r *DBSurveyRepo) CreateSurvey(s *survey.SatisfactionSurvey) error {
	return r.db.Create(s).Error
}

func (r *DBSurveyRepo) DeleteSurvey(id uint) error {
	return r.db.Delete(&survey.SatisfactionSurvey{}, id).Error
}

func (r *DBSurveyRepo) WithTx(tx *gorm.DB) SurveyRepo {
	if tx == nil {
		return r
	}
	return &DBSurveyRepo{db: tx}
}
