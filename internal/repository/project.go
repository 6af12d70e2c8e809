package repository

import (
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	ListProjects() ([]project.Project, error)
	ListProjectsByAssessor(uid uint) ([]project.Project, error)
	ListProjectsByReviewer(uid uint) ([]project.Project, error)
	ReplaceAll(projects []project.Project) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("p_id asc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByAssessor(uid uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("assessor_id = ?", uid).Order("p_id asc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByReviewer(uid uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("reviewer_id = ?", uid).Order("p_id asc").Find(&projects).Error
	return projects, err
}

// ReplaceAll swaps the whole table in one transaction (CSV import).
func (r *DBProjectRepo) ReplaceAll(projects []project.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&project.Project{}).Error; err != nil {
			return err
		}
		if len(projects) == 0 {
			return nil
		}
		return tx.Create(&projects).Error
	})
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
