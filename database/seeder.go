package database

import (
	"log"

	"luct-reporting-backend/app/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders menjalankan seluruh seeder yang dibutuhkan portal.
// Panggil ini sekali di main.go setelah InitDB berhasil.
func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
	SeedCourses(db)
	SeedClasses(db)
	SeedReports(db)
	SeedRatings(db)
}

func strPtr(s string) *string { return &s }

// ===============================
//  SEED USERS
// ===============================

// SeedUsers menambahkan 5 akun awal, satu per role (plus lecturer kedua
// untuk stream berbeda). Password semuanya "password123".
func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] User sudah ada, skip seeding users.")
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	users := []model.User{
		{ID: uuid.New(), Username: "student1", Password: string(hash), Role: "student", Stream: nil},
		{ID: uuid.New(), Username: "lecturer1", Password: string(hash), Role: "lecturer", Stream: strPtr("Information Technology")},
		{ID: uuid.New(), Username: "lecturer2", Password: string(hash), Role: "lecturer", Stream: strPtr("Computer Science")},
		{ID: uuid.New(), Username: "prl1", Password: string(hash), Role: "prl", Stream: strPtr("Information Technology")},
		{ID: uuid.New(), Username: "pl1", Password: string(hash), Role: "pl", Stream: nil},
	}

	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed users: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 5 user (student1, lecturer1, lecturer2, prl1, pl1), password: password123")
}

// ===============================
//  SEED COURSES
// ===============================

// SeedCourses menambahkan 2 course awal, satu per stream.
func SeedCourses(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Course sudah ada, skip seeding courses.")
		return
	}

	courses := []model.Course{
		{ID: uuid.New(), Name: "Web Development", Code: "DIWA2110", Stream: "Information Technology"},
		{ID: uuid.New(), Name: "Database Systems", Code: "DBS101", Stream: "Computer Science"},
	}

	if err := db.Create(&courses).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed courses: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 2 course")
}

// ===============================
//  SEED CLASSES
// ===============================

// SeedClasses menghubungkan tiap course ke lecturer stream-nya.
func SeedClasses(db *gorm.DB) {
	var count int64
	db.Model(&model.Class{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Class sudah ada, skip seeding classes.")
		return
	}

	var webDev, dbSys model.Course
	if err := db.Where("code = ?", "DIWA2110").First(&webDev).Error; err != nil {
		log.Println("[SEEDER] Course DIWA2110 tidak ditemukan, skip seeding classes.")
		return
	}
	if err := db.Where("code = ?", "DBS101").First(&dbSys).Error; err != nil {
		log.Println("[SEEDER] Course DBS101 tidak ditemukan, skip seeding classes.")
		return
	}

	var lecturer1, lecturer2 model.User
	if err := db.Where("username = ?", "lecturer1").First(&lecturer1).Error; err != nil {
		log.Println("[SEEDER] User 'lecturer1' tidak ditemukan, skip seeding classes.")
		return
	}
	if err := db.Where("username = ?", "lecturer2").First(&lecturer2).Error; err != nil {
		log.Println("[SEEDER] User 'lecturer2' tidak ditemukan, skip seeding classes.")
		return
	}

	classes := []model.Class{
		{
			ID:            uuid.New(),
			CourseID:      webDev.ID,
			LecturerID:    lecturer1.ID,
			Venue:         "Room 101",
			ScheduledTime: "Monday 10:00-12:00",
			TotalStudents: 30,
			Stream:        "Information Technology",
		},
		{
			ID:            uuid.New(),
			CourseID:      dbSys.ID,
			LecturerID:    lecturer2.ID,
			Venue:         "Room 102",
			ScheduledTime: "Tuesday 14:00-16:00",
			TotalStudents: 25,
			Stream:        "Computer Science",
		},
	}

	if err := db.Create(&classes).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed classes: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 2 class")
}

// ===============================
//  SEED REPORTS
// ===============================

// SeedReports menambahkan 1 laporan minggu pertama untuk tiap kelas,
// dengan venue/scheduled_time disalin dari class masing-masing.
func SeedReports(db *gorm.DB) {
	var count int64
	db.Model(&model.Report{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Report sudah ada, skip seeding reports.")
		return
	}

	classes := []model.Class{}
	if err := db.Order("created_at").Find(&classes).Error; err != nil || len(classes) < 2 {
		log.Println("[SEEDER] Class belum lengkap, skip seeding reports.")
		return
	}

	reports := []model.Report{
		{
			ID:               uuid.New(),
			LecturerID:       classes[0].LecturerID,
			ClassID:          classes[0].ID,
			Week:             1,
			Date:             "2025-09-01",
			Topic:            "Intro to Web",
			LearningOutcomes: "Understand HTML/CSS",
			PresentStudents:  25,
			TotalStudents:    30,
			Venue:            classes[0].Venue,
			ScheduledTime:    classes[0].ScheduledTime,
			Recommendations:  "More practice",
		},
		{
			ID:               uuid.New(),
			LecturerID:       classes[1].LecturerID,
			ClassID:          classes[1].ID,
			Week:             1,
			Date:             "2025-09-02",
			Topic:            "DB Basics",
			LearningOutcomes: "Learn SQL",
			PresentStudents:  20,
			TotalStudents:    25,
			Venue:            classes[1].Venue,
			ScheduledTime:    classes[1].ScheduledTime,
			Recommendations:  "Good engagement",
		},
	}

	if err := db.Create(&reports).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed reports: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 2 report")
}

// ===============================
//  SEED RATINGS
// ===============================

// SeedRatings menambahkan 2 rating fasilitas oleh kedua lecturer
// (ratee_id null karena yang dinilai fasilitas, bukan orang).
func SeedRatings(db *gorm.DB) {
	var count int64
	db.Model(&model.Rating{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Rating sudah ada, skip seeding ratings.")
		return
	}

	var lecturer1, lecturer2 model.User
	if err := db.Where("username = ?", "lecturer1").First(&lecturer1).Error; err != nil {
		log.Println("[SEEDER] User 'lecturer1' tidak ditemukan, skip seeding ratings.")
		return
	}
	if err := db.Where("username = ?", "lecturer2").First(&lecturer2).Error; err != nil {
		log.Println("[SEEDER] User 'lecturer2' tidak ditemukan, skip seeding ratings.")
		return
	}

	ratings := []model.Rating{
		{
			ID:      uuid.New(),
			RaterID: lecturer1.ID,
			RateeID: nil,
			Rating:  4,
			Comment: "Good classroom facilities",
			Type:    model.RatingLecturerToFacilities,
		},
		{
			ID:      uuid.New(),
			RaterID: lecturer2.ID,
			RateeID: nil,
			Rating:  3,
			Comment: "Projector needs repair",
			Type:    model.RatingLecturerToFacilities,
		},
	}

	if err := db.Create(&ratings).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed ratings: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 2 rating fasilitas")
}
