package repository

import (
	"time"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportFilter menampung filter opsional GET /reports. Setiap field boleh
// kosong dan masing-masing berdiri sendiri; semuanya di-AND-kan dengan
// predikat scope oleh composer.
type ReportFilter struct {
	Search   string     // substring case-insensitive atas nama course / username lecturer
	Week     *int       // exact match nomor minggu
	CourseID *uuid.UUID // exact match id course
}

// ReportRow adalah baris hasil join untuk GET /reports, termasuk status
// yang diturunkan dari keberadaan prl_feedback.
type ReportRow struct {
	ID               uuid.UUID `json:"id"`
	LecturerID       uuid.UUID `json:"lecturer_id"`
	ClassID          uuid.UUID `json:"class_id"`
	Week             int       `json:"week"`
	Date             string    `json:"date"`
	Topic            string    `json:"topic"`
	LearningOutcomes string    `json:"learning_outcomes"`
	PresentStudents  int       `json:"present_students"`
	TotalStudents    int       `json:"total_students"`
	Venue            string    `json:"venue"`
	ScheduledTime    string    `json:"scheduled_time"`
	Recommendations  string    `json:"recommendations"`
	PRLFeedback      *string   `gorm:"column:prl_feedback" json:"prl_feedback"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	LecturerName     string    `json:"lecturer_name"`
	CourseName       string    `json:"course_name"`
}

// MonitoringStats adalah hasil agregat GET /monitoring.
type MonitoringStats struct {
	AvgAttendance float64 `json:"avg_attendance"`
	ReportCount   int64   `json:"report_count"`
}

// ReportRepository mendefinisikan kontrak operasi database untuk entity Report.
type ReportRepository interface {
	Create(report *model.Report) error
	List(scope query.Predicate, filter ReportFilter) ([]ReportRow, error)
	// AttachFeedback menulis prl_feedback; status ikut berubah dengan
	// sendirinya karena diturunkan dari kolom itu. Idempoten: feedback
	// lama ditimpa begitu saja.
	AttachFeedback(id uuid.UUID, feedback string) error
	Monitoring(scope query.Predicate) (*MonitoringStats, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository membuat instance baru reportRepository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

// Create menyimpan laporan mingguan baru.
func (r *reportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

// List menyusun query baca lewat composer: base join + scope wajib +
// filter opsional, lalu mengeksekusinya.
// Alias: r = reports, u = users, cl = classes, co = courses.
func (r *reportRepository) List(scope query.Predicate, filter ReportFilter) ([]ReportRow, error) {
	b := query.New(
		"SELECT r.*, " +
			"CASE WHEN r.prl_feedback IS NULL THEN 'pending' ELSE 'reviewed' END AS status, " +
			"u.username AS lecturer_name, co.name AS course_name " +
			"FROM reports r " +
			"JOIN users u ON r.lecturer_id = u.id " +
			"JOIN classes cl ON r.class_id = cl.id " +
			"JOIN courses co ON cl.course_id = co.id").
		Scope(scope)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		b.Where("(co.name ILIKE ? OR u.username ILIKE ?)", like, like)
	}
	if filter.Week != nil {
		b.Where("r.week = ?", *filter.Week)
	}
	if filter.CourseID != nil {
		b.Where("co.id = ?", *filter.CourseID)
	}

	rows := []ReportRow{}
	if err := r.db.Raw(b.SQL(), b.Args()...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// AttachFeedback menimpa prl_feedback laporan dengan id tertentu.
func (r *reportRepository) AttachFeedback(id uuid.UUID, feedback string) error {
	return r.db.
		Model(&model.Report{}).
		Where("id = ?", id).
		Update("prl_feedback", feedback).Error
}

// Monitoring menghitung rata-rata rasio kehadiran dan jumlah laporan dengan
// scope yang sama persis dengan GET /reports. total_students nol atau null
// tidak menyumbang ke rata-rata (NULLIF → AVG mengabaikan baris itu), dan
// tanpa baris sama sekali hasilnya {0, 0}, bukan null.
func (r *reportRepository) Monitoring(scope query.Predicate) (*MonitoringStats, error) {
	b := query.New(
		"SELECT COALESCE(AVG(present_students::numeric / NULLIF(total_students, 0)), 0) AS avg_attendance, " +
			"COUNT(*) AS report_count FROM reports").
		Scope(scope)

	var stats MonitoringStats
	if err := r.db.Raw(b.SQL(), b.Args()...).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
