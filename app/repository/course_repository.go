package repository

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/query"

	"gorm.io/gorm"
)

// CourseRepository mendefinisikan kontrak operasi database untuk entity Course.
type CourseRepository interface {
	Create(course *model.Course) error
	// List mengembalikan course sesuai predikat scope role pemanggil.
	List(scope query.Predicate) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository membuat instance baru courseRepository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db}
}

// Create menyimpan course baru (dibuat oleh pl).
func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

// List menjalankan query baca yang disusun composer: base statement plus
// predikat scope (kosong untuk student/pl).
func (r *courseRepository) List(scope query.Predicate) ([]model.Course, error) {
	b := query.New("SELECT * FROM courses").Scope(scope)

	courses := []model.Course{}
	if err := r.db.Raw(b.SQL(), b.Args()...).Scan(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
