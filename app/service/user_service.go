package service

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/repository"

	"github.com/google/uuid"
)

// UserService melayani endpoint profile dan daftar lecturer untuk pl.
type UserService interface {
	Profile(userID uuid.UUID) (*model.User, error)
	ListLecturers(ident policy.Identity) ([]repository.LecturerOption, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService membuat instance baru userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Profile mengambil data akun pemanggil sendiri.
func (s *userService) Profile(userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	return user, nil
}

// ListLecturers mengembalikan seluruh lecturer untuk dropdown assignment.
// Hanya pl yang boleh.
func (s *userService) ListLecturers(ident policy.Identity) ([]repository.LecturerOption, error) {
	if err := policy.Authorize(ident.Role, policy.OpListLecturers); err != nil {
		return nil, err
	}

	rows, err := s.userRepo.ListLecturers()
	if err != nil {
		return nil, wrapStorage(err)
	}
	return rows, nil
}
