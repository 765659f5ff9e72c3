package service

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/repository"

	"github.com/google/uuid"
)

// AssignInput adalah data assignment lecturer ke satu class oleh pl.
// Stream disalin terpisah dari stream course dan boleh berbeda
// (cross-listing untuk visibilitas prl).
type AssignInput struct {
	CourseID      uuid.UUID
	LecturerID    uuid.UUID
	Venue         string
	ScheduledTime string
	TotalStudents int
	Stream        string
}

// ClassService melayani assignment dan pembacaan kelas.
type ClassService interface {
	Assign(ident policy.Identity, input AssignInput) error
	List(ident policy.Identity) ([]repository.ClassRow, error)
}

type classService struct {
	classRepo repository.ClassRepository
}

// NewClassService membuat instance baru classService.
func NewClassService(classRepo repository.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

// Assign membuat assignment kelas baru. Hanya pl yang boleh.
func (s *classService) Assign(ident policy.Identity, input AssignInput) error {
	if err := policy.Authorize(ident.Role, policy.OpAssignLecturer); err != nil {
		return err
	}

	class := model.Class{
		CourseID:      input.CourseID,
		LecturerID:    input.LecturerID,
		Venue:         input.Venue,
		ScheduledTime: input.ScheduledTime,
		TotalStudents: input.TotalStudents,
		Stream:        input.Stream,
	}
	return wrapStorage(s.classRepo.Create(&class))
}

// List mengembalikan kelas (plus nama course dan lecturer) sesuai scope:
// lecturer hanya kelasnya sendiri, prl hanya stream-nya, student/pl semua.
func (s *classService) List(ident policy.Identity) ([]repository.ClassRow, error) {
	rows, err := s.classRepo.List(policy.ClassScope(ident))
	if err != nil {
		return nil, wrapStorage(err)
	}
	return rows, nil
}
