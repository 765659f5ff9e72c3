package service

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/repository"
)

// CourseInput adalah data pembuatan course baru oleh pl.
type CourseInput struct {
	Name        string
	Code        string
	Stream      string
	Description string
}

// CourseService melayani pembuatan dan pembacaan course.
type CourseService interface {
	Create(ident policy.Identity, input CourseInput) error
	List(ident policy.Identity) ([]model.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

// NewCourseService membuat instance baru courseService.
func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

// Create menyimpan course baru. Hanya pl yang boleh.
func (s *courseService) Create(ident policy.Identity, input CourseInput) error {
	if err := policy.Authorize(ident.Role, policy.OpCreateCourse); err != nil {
		return err
	}

	course := model.Course{
		Name:        input.Name,
		Code:        input.Code,
		Stream:      input.Stream,
		Description: input.Description,
	}
	return wrapStorage(s.courseRepo.Create(&course))
}

// List mengembalikan course sesuai scope role: prl/lecturer hanya stream-nya,
// student/pl semua.
func (s *courseService) List(ident policy.Identity) ([]model.Course, error) {
	courses, err := s.courseRepo.List(policy.CourseScope(ident))
	if err != nil {
		return nil, wrapStorage(err)
	}
	return courses, nil
}
