package service

import (
	"errors"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportInput adalah data submit laporan mingguan oleh lecturer.
// Venue dan ScheduledTime boleh dikosongkan; keduanya lalu disalin dari
// class pada saat submit, dan setelah itu tidak pernah diturunkan ulang —
// perubahan class di kemudian hari tidak mengubah laporan lama.
type ReportInput struct {
	ClassID          uuid.UUID
	Week             int
	Date             string
	Topic            string
	LearningOutcomes string
	PresentStudents  int
	TotalStudents    int
	Venue            string
	ScheduledTime    string
	Recommendations  string
}

// ReportService melayani submit, listing, feedback, dan agregat monitoring.
type ReportService interface {
	Submit(ident policy.Identity, input ReportInput) error
	List(ident policy.Identity, filter repository.ReportFilter) ([]repository.ReportRow, error)
	AttachFeedback(ident policy.Identity, reportID uuid.UUID, feedback string) error
	Monitoring(ident policy.Identity) (*repository.MonitoringStats, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	classRepo  repository.ClassRepository
}

// NewReportService membuat instance baru reportService.
func NewReportService(reportRepo repository.ReportRepository, classRepo repository.ClassRepository) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		classRepo:  classRepo,
	}
}

// Submit menyimpan laporan mingguan baru atas nama pemanggil.
// Hanya lecturer yang boleh; lecturer_id selalu identitas pemanggil, bukan
// kiriman client. Tidak ada pemeriksaan kepemilikan class: lecturer boleh
// melaporkan class yang di-assign ke lecturer lain (laporan itu tetap hanya
// tampil di scope miliknya sendiri).
func (s *reportService) Submit(ident policy.Identity, input ReportInput) error {
	if err := policy.Authorize(ident.Role, policy.OpSubmitReport); err != nil {
		return err
	}

	class, err := s.classRepo.FindByID(input.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationErrorf("class %s not found", input.ClassID)
		}
		return wrapStorage(err)
	}

	// Salin field turunan class sekali, saat submit.
	venue := input.Venue
	if venue == "" {
		venue = class.Venue
	}
	scheduledTime := input.ScheduledTime
	if scheduledTime == "" {
		scheduledTime = class.ScheduledTime
	}

	report := model.Report{
		LecturerID:       ident.UserID,
		ClassID:          input.ClassID,
		Week:             input.Week,
		Date:             input.Date,
		Topic:            input.Topic,
		LearningOutcomes: input.LearningOutcomes,
		PresentStudents:  input.PresentStudents,
		TotalStudents:    input.TotalStudents,
		Venue:            venue,
		ScheduledTime:    scheduledTime,
		Recommendations:  input.Recommendations,
	}
	return wrapStorage(s.reportRepo.Create(&report))
}

// List mengembalikan laporan sesuai scope role pemanggil, di-AND-kan dengan
// filter opsional (search / week / course) atas base set yang sama — bukan
// masing-masing diterapkan ke base set berbeda.
func (s *reportService) List(ident policy.Identity, filter repository.ReportFilter) ([]repository.ReportRow, error) {
	rows, err := s.reportRepo.List(policy.ReportScope(ident), filter)
	if err != nil {
		return nil, wrapStorage(err)
	}
	return rows, nil
}

// AttachFeedback menempelkan feedback prl ke satu laporan. Hanya prl yang
// boleh. Transisi status satu arah pending→reviewed mengikuti dengan
// sendirinya (status diturunkan dari prl_feedback); menempelkan feedback ke
// laporan yang sudah reviewed sah dan hanya menimpa teksnya.
func (s *reportService) AttachFeedback(ident policy.Identity, reportID uuid.UUID, feedback string) error {
	if err := policy.Authorize(ident.Role, policy.OpReviewReport); err != nil {
		return err
	}
	return wrapStorage(s.reportRepo.AttachFeedback(reportID, feedback))
}

// Monitoring menghitung agregat kehadiran dengan scope yang sama persis
// dengan List.
func (s *reportService) Monitoring(ident policy.Identity) (*repository.MonitoringStats, error) {
	stats, err := s.reportRepo.Monitoring(policy.MonitoringScope(ident))
	if err != nil {
		return nil, wrapStorage(err)
	}
	return stats, nil
}
