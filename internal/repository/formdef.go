package repository

import (
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"gorm.io/gorm"
)

type FormDefRepo interface {
	ListDefinitions() ([]formdef.FormDefinition, error)
	FindByKey(key string) (formdef.FormDefinition, error)
	Save(fd *formdef.FormDefinition) error
	Count() (int64, error)
	WithTx(tx *gorm.DB) FormDefRepo
}

type DBFormDefRepo struct {
	db *gorm.DB
}

func NewFormDefRepo(db *gorm.DB) *DBFormDefRepo {
	return &DBFormDefRepo{db: db}
}

func (r *DBFormDefRepo) ListDefinitions() ([]formdef.FormDefinition, error) {
	var defs []formdef.FormDefinition
	err := r.db.Order("position asc, fd_id asc").Find(&defs).Error
	return defs, err
}

func (r *DBFormDefRepo) FindByKey(key string) (formdef.FormDefinition, error) {
	var fd formdef.FormDefinition
	err := r.db.Where("key = ?", key).First(&fd).Error
	return fd, err
}

func (r *DBFormDefRepo) Save(fd *formdef.FormDefinition) error {
	return r.db.Save(fd).Error
}

func (r *DBFormDefRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&formdef.FormDefinition{}).Count(&n).Error
	return n, err
}

func (r *DBFormDefRepo) WithTx(tx *gorm.DB) FormDefRepo {
	if tx == nil {
		return r
	}
	return &DBFormDefRepo{db: tx}
}
