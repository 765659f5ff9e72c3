package model

import (
	"time"

	"github.com/google/uuid"
)

// Rating types understood by the portal.
const (
	RatingStudentToLecturer    = "student_to_lecturer"
	RatingLecturerToFacilities = "lecturer_to_facilities"
)

// Report statuses. Status is derived from prl_feedback presence and is
// never stored as its own column.
const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
)

// User merepresentasikan akun portal (student, lecturer, prl, pl).
// Stream is nullable: students and program leads have no stream.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	Stream    *string   `gorm:"type:varchar(100)" json:"stream"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Course adalah mata kuliah milik satu stream. Dibuat oleh pl.
type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Code        string    `gorm:"type:varchar(20);not null" json:"code"`
	Stream      string    `gorm:"type:varchar(100);not null" json:"stream"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Class menghubungkan satu course dengan satu lecturer plus data kelasnya.
// Stream is a denormalized copy taken at assignment time and may legitimately
// diverge from the course's stream (cross-listing).
type Class struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID      uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course        Course    `gorm:"foreignKey:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	LecturerID    uuid.UUID `gorm:"type:uuid;not null" json:"lecturer_id"`
	Lecturer      User      `gorm:"foreignKey:LecturerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Venue         string    `json:"venue"`
	ScheduledTime string    `json:"scheduled_time"`
	TotalStudents int       `json:"total_students"`
	Stream        string    `gorm:"type:varchar(100);not null" json:"stream"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Report adalah laporan mingguan yang disubmit lecturer untuk satu class.
// Venue and scheduled time are copied from the class at submission time so
// later class edits never rewrite history.
type Report struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LecturerID       uuid.UUID `gorm:"type:uuid;not null" json:"lecturer_id"`
	ClassID          uuid.UUID `gorm:"type:uuid;not null" json:"class_id"`
	Week             int       `gorm:"not null" json:"week"`
	Date             string    `gorm:"type:varchar(20)" json:"date"`
	Topic            string    `json:"topic"`
	LearningOutcomes string    `json:"learning_outcomes"`
	PresentStudents  int       `json:"present_students"`
	TotalStudents    int       `json:"total_students"`
	Venue            string    `json:"venue"`
	ScheduledTime    string    `json:"scheduled_time"`
	Recommendations  string    `json:"recommendations"`
	PRLFeedback      *string   `gorm:"column:prl_feedback" json:"prl_feedback"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Status menurunkan status laporan dari keberadaan prl_feedback:
// reviewed iff feedback non-null, else pending.
func (r *Report) Status() string {
	if r.PRLFeedback == nil {
		return ReportStatusPending
	}
	return ReportStatusReviewed
}

// Rating menyimpan satu penilaian: student→lecturer atau lecturer→facilities.
// RateeID is null exactly when a facility (not a person) is rated.
type Rating struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RaterID   uuid.UUID  `gorm:"type:uuid;not null" json:"rater_id"`
	RateeID   *uuid.UUID `gorm:"type:uuid" json:"ratee_id"`
	Rating    int        `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string     `json:"comment"`
	Type      string     `gorm:"type:varchar(30);not null" json:"type"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
