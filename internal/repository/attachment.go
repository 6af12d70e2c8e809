package repository

import (
	"github.com/itsd-lab/vendorgate/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	FindByID(id uint) (attachment.Attachment, error)
	ListByProjectAndForm(projectID uint, formKey string) ([]attachment.Attachment, error)
	Create(a *attachment.Attachment) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) FindByID(id uint) (attachment.Attachment, error) {
	var a attachment.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) ListByProjectAndForm(projectID uint, formKey string) ([]attachment.Attachment, error) {
	var list []attachment.Attachment
	err := r.db.Where("project_id = ? AND form_key = ?", projectID, formKey).
		Order("create_at desc").Find(&list).Error
	return list, err
}

func (r *DBAttachmentRepo) Create(a *attachment.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) Delete(id uint) error {
	return r.db.Delete(&attachment.Attachment{}, id).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
