package application

import (
	"context"
	"errors"
	"io"

	"github.com/itsd-lab/vendorgate/internal/domain/attachment"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/internal/storage"
	"gorm.io/gorm"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

// AttachmentService stores evidence files in object storage and tracks their
// metadata per (project, form).
type AttachmentService struct {
	Repos *repository.Repos
}

func NewAttachmentService(repos *repository.Repos) *AttachmentService {
	return &AttachmentService{Repos: repos}
}

func (s *AttachmentService) Upload(ctx context.Context, projectID uint, formKey, fileName, contentType, uploadedBy string, content io.Reader, size int64) (*attachment.Attachment, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	objectKey := storage.NewObjectKey(projectID, formKey, fileName)
	if err := storage.UploadObject(ctx, objectKey, contentType, content, size); err != nil {
		return nil, err
	}

	a := &attachment.Attachment{
		ProjectID:   projectID,
		FormKey:     formKey,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        size,
		UploadedBy:  uploadedBy,
	}
	if err := s.Repos.Attachment.Create(a); err != nil {
		// keep storage consistent with the metadata table
		_ = storage.DeleteObject(ctx, objectKey)
		return nil, err
	}
	return a, nil
}

func (s *AttachmentService) List(projectID uint, formKey string) ([]attachment.Attachment, error) {
	return s.Repos.Attachment.ListByProjectAndForm(projectID, formKey)
}

func (s *AttachmentService) Download(ctx context.Context, id uint) (attachment.Attachment, []byte, error) {
	a, err := s.Repos.Attachment.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return attachment.Attachment{}, nil, ErrAttachmentNotFound
		}
		return attachment.Attachment{}, nil, err
	}
	data, err := storage.DownloadObject(ctx, a.ObjectKey)
	if err != nil {
		return attachment.Attachment{}, nil, err
	}
	return a, data, nil
}

func (s *AttachmentService) Delete(ctx context.Context, id uint) error {
	a, err := s.Repos.Attachment.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttachmentNotFound
		}
		return err
	}
	if err := storage.DeleteObject(ctx, a.ObjectKey); err != nil {
		return err
	}
	return s.Repos.Attachment.Delete(id)
}
