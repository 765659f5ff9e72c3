package repository

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/query"

	"gorm.io/gorm"
)

// RatingRepository mendefinisikan kontrak operasi database untuk entity Rating.
// Rating tidak pernah diubah atau dihapus setelah dibuat.
type RatingRepository interface {
	Create(rating *model.Rating) error
	List(scope query.Predicate) ([]model.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository membuat instance baru ratingRepository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db}
}

// Create menyimpan rating baru.
func (r *ratingRepository) Create(rating *model.Rating) error {
	return r.db.Create(rating).Error
}

// List mengambil rating sesuai predikat scope role pemanggil.
func (r *ratingRepository) List(scope query.Predicate) ([]model.Rating, error) {
	b := query.New("SELECT * FROM ratings").Scope(scope)

	ratings := []model.Rating{}
	if err := r.db.Raw(b.SQL(), b.Args()...).Scan(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
