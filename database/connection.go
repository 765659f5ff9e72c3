package database

import (
	"fmt"
	"log"
	"os"

	"luct-reporting-backend/app/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB membuka koneksi PostgreSQL dan menjalankan migrasi skema.
// Connection pooling dan serialisasi write yang konflik sepenuhnya urusan
// driver/database; aplikasi tidak menambah locking sendiri.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke postgres: %v", err)
	}

	log.Println("Menjalankan migrasi database PostgreSQL...")
	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Class{},
		&model.Report{},
		&model.Rating{},
	)
	if err != nil {
		return nil, fmt.Errorf("gagal migrasi database: %v", err)
	}

	log.Println("Berhasil terhubung ke PostgreSQL!")
	return db, nil
}
