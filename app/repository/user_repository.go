package repository

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LecturerOption adalah baris ringkas untuk dropdown assignment milik pl.
type LecturerOption struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// UserRepository mendefinisikan kontrak operasi database untuk entity User.
type UserRepository interface {
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	ListLecturers() ([]LecturerOption, error)
}

// userRepository adalah implementasi konkret UserRepository berbasis GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository membuat instance baru userRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// Create menyimpan akun baru ke database.
func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByUsername mencari user berdasarkan username (dipakai saat login).
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID mengambil user berdasarkan ID (dipakai endpoint profile).
func (r *userRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListLecturers mengambil seluruh akun ber-role lecturer (id + username).
func (r *userRepository) ListLecturers() ([]LecturerOption, error) {
	rows := []LecturerOption{}
	err := r.db.
		Model(&model.User{}).
		Select("id", "username").
		Where("role = ?", string(policy.RoleLecturer)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
