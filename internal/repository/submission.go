package repository

import (
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	FindByProjectAndForm(projectID uint, formKey string) (submission.FormSubmission, error)
	FindByProject(projectID uint) ([]submission.FormSubmission, error)
	FindAll() ([]submission.FormSubmission, error)
	Save(s *submission.FormSubmission) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) FindByProjectAndForm(projectID uint, formKey string) (submission.FormSubmission, error) {
	var s submission.FormSubmission
	err := r.db.Where("project_id = ? AND form_key = ?", projectID, formKey).First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) FindByProject(projectID uint) ([]submission.FormSubmission, error) {
	var subs []submission.FormSubmission
	err := r.db.Where("project_id = ?", projectID).Order("form_key asc").Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) FindAll() ([]submission.FormSubmission, error) {
	var subs []submission.FormSubmission
	err := r.db.Find(&subs).Error
	return subs, err
}

// Save upserts; the composite unique index on (project_id, form_key) keeps one
// row per pair.
func (r *DBSubmissionRepo) Save(s *submission.FormSubmission) error {
	return r.db.Save(s).Error
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{db: tx}
}
