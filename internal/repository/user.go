package repository

import (
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetAllUsers() ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	GetUsernameByID(id uint) (string, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	ReplaceAll(users []user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetAllUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("u_id asc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

// GetUserByUsername matches case-insensitively; usernames are unique under
// that comparison.
func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUsernameByID(id uint) (string, error) {
	var username string
	err := r.db.Model(&user.User{}).Select("username").Where("u_id = ?", id).First(&username).Error
	return username, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

// ReplaceAll swaps the whole table in one transaction (CSV import).
func (r *DBUserRepo) ReplaceAll(users []user.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&user.User{}).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Create(&users).Error
	})
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
