package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	FormDef    FormDefRepo
	Submission SubmissionRepo
	Survey     SurveyRepo
	Attachment AttachmentRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		FormDef:    NewFormDefRepo(db),
		Submission: NewSubmissionRepo(db),
		Survey:     NewSurveyRepo(db),
		Attachment: NewAttachmentRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		FormDef:    r.FormDef.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Survey:     r.Survey.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
