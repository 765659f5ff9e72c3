package repository

import (
	"time"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassRow adalah baris hasil join classes + courses + users untuk GET /classes.
type ClassRow struct {
	ID            uuid.UUID `json:"id"`
	CourseID      uuid.UUID `json:"course_id"`
	LecturerID    uuid.UUID `json:"lecturer_id"`
	Venue         string    `json:"venue"`
	ScheduledTime string    `json:"scheduled_time"`
	TotalStudents int       `json:"total_students"`
	Stream        string    `json:"stream"`
	CreatedAt     time.Time `json:"created_at"`
	CourseName    string    `json:"course_name"`
	LecturerName  string    `json:"lecturer_name"`
}

// ClassRepository mendefinisikan kontrak operasi database untuk entity Class.
type ClassRepository interface {
	Create(class *model.Class) error
	FindByID(id uuid.UUID) (*model.Class, error)
	List(scope query.Predicate) ([]ClassRow, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository membuat instance baru classRepository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db}
}

// Create menyimpan assignment kelas baru (dibuat oleh pl).
func (r *classRepository) Create(class *model.Class) error {
	return r.db.Create(class).Error
}

// FindByID mengambil satu class (dipakai saat submit report untuk menyalin
// venue dan scheduled_time).
func (r *classRepository) FindByID(id uuid.UUID) (*model.Class, error) {
	var class model.Class
	if err := r.db.Where("id = ?", id).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// List mengambil kelas beserta nama course dan nama lecturer, dibatasi
// predikat scope role pemanggil (alias: c = classes, co = courses, u = users).
func (r *classRepository) List(scope query.Predicate) ([]ClassRow, error) {
	b := query.New(
		"SELECT c.*, co.name AS course_name, u.username AS lecturer_name " +
			"FROM classes c " +
			"JOIN courses co ON c.course_id = co.id " +
			"JOIN users u ON c.lecturer_id = u.id").
		Scope(scope)

	rows := []ClassRow{}
	if err := r.db.Raw(b.SQL(), b.Args()...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
