package service

import (
	"fmt"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/repository"

	"github.com/google/uuid"
)

// RatingInput adalah data submit rating.
type RatingInput struct {
	RateeID *uuid.UUID
	Rating  int
	Comment string
	Type    string
}

// RatingService melayani submit dan pembacaan rating.
type RatingService interface {
	Submit(ident policy.Identity, input RatingInput) error
	List(ident policy.Identity) ([]model.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
}

// NewRatingService membuat instance baru ratingService.
func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// Submit memvalidasi lalu menyimpan rating baru.
// Aturan role-type: student hanya student_to_lecturer, lecturer hanya
// lecturer_to_facilities (pelanggaran → Forbidden). Aturan bentuk: tipe
// student_to_lecturer wajib ratee non-null, lecturer_to_facilities wajib
// ratee null; nilai 1-5 (pelanggaran → ValidationError). Semua pemeriksaan
// berjalan sebelum storage disentuh.
func (s *ratingService) Submit(ident policy.Identity, input RatingInput) error {
	if err := policy.Authorize(ident.Role, policy.OpSubmitRating); err != nil {
		return err
	}

	switch ident.Role {
	case policy.RoleStudent:
		if input.Type != model.RatingStudentToLecturer {
			return fmt.Errorf("%w: students may only submit %s ratings",
				policy.ErrForbidden, model.RatingStudentToLecturer)
		}
	case policy.RoleLecturer:
		if input.Type != model.RatingLecturerToFacilities {
			return fmt.Errorf("%w: lecturers may only submit %s ratings",
				policy.ErrForbidden, model.RatingLecturerToFacilities)
		}
	}

	if input.Rating < 1 || input.Rating > 5 {
		return validationErrorf("rating must be between 1 and 5, got %d", input.Rating)
	}

	// Tipe menentukan bentuk ratee secara ketat.
	switch input.Type {
	case model.RatingStudentToLecturer:
		if input.RateeID == nil {
			return validationErrorf("ratee_id is required for %s ratings", input.Type)
		}
	case model.RatingLecturerToFacilities:
		if input.RateeID != nil {
			return validationErrorf("ratee_id must be null for %s ratings", input.Type)
		}
	}

	rating := model.Rating{
		RaterID: ident.UserID,
		RateeID: input.RateeID,
		Rating:  input.Rating,
		Comment: input.Comment,
		Type:    input.Type,
	}
	return wrapStorage(s.ratingRepo.Create(&rating))
}

// List mengembalikan rating sesuai scope role: student hanya rating buatannya,
// lecturer rating tentang dirinya plus rating fasilitas miliknya, prl/pl semua.
func (s *ratingService) List(ident policy.Identity) ([]model.Rating, error) {
	ratings, err := s.ratingRepo.List(policy.RatingScope(ident))
	if err != nil {
		return nil, wrapStorage(err)
	}
	return ratings, nil
}
