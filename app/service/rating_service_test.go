package service

import (
	"testing"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRatingRepo mencatat rating yang dibuat dan scope list terakhir.
type fakeRatingRepo struct {
	created   []model.Rating
	listScope query.Predicate
}

func (f *fakeRatingRepo) Create(rating *model.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	f.created = append(f.created, *rating)
	return nil
}

func (f *fakeRatingRepo) List(scope query.Predicate) ([]model.Rating, error) {
	f.listScope = scope
	return []model.Rating{}, nil
}

func uuidPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func TestSubmitRating_RoleTypeRules(t *testing.T) {
	cases := []struct {
		name    string
		role    policy.Role
		input   RatingInput
		wantErr string // "forbidden", "validation", atau "" untuk sukses
	}{
		{
			name:    "student rates lecturer",
			role:    policy.RoleStudent,
			input:   RatingInput{RateeID: uuidPtr(), Rating: 5, Type: model.RatingStudentToLecturer},
			wantErr: "",
		},
		{
			name:    "lecturer rates facilities",
			role:    policy.RoleLecturer,
			input:   RatingInput{Rating: 3, Type: model.RatingLecturerToFacilities},
			wantErr: "",
		},
		{
			name:    "student tries facility rating",
			role:    policy.RoleStudent,
			input:   RatingInput{Rating: 3, Type: model.RatingLecturerToFacilities},
			wantErr: "forbidden",
		},
		{
			name:    "lecturer tries lecturer rating",
			role:    policy.RoleLecturer,
			input:   RatingInput{RateeID: uuidPtr(), Rating: 4, Type: model.RatingStudentToLecturer},
			wantErr: "forbidden",
		},
		{
			name:    "prl may not rate",
			role:    policy.RolePRL,
			input:   RatingInput{Rating: 4, Type: model.RatingLecturerToFacilities},
			wantErr: "forbidden",
		},
		{
			name:    "pl may not rate",
			role:    policy.RolePL,
			input:   RatingInput{RateeID: uuidPtr(), Rating: 4, Type: model.RatingStudentToLecturer},
			wantErr: "forbidden",
		},
		{
			name:    "student_to_lecturer without ratee",
			role:    policy.RoleStudent,
			input:   RatingInput{Rating: 4, Type: model.RatingStudentToLecturer},
			wantErr: "validation",
		},
		{
			name:    "lecturer_to_facilities with ratee",
			role:    policy.RoleLecturer,
			input:   RatingInput{RateeID: uuidPtr(), Rating: 4, Type: model.RatingLecturerToFacilities},
			wantErr: "validation",
		},
		{
			name:    "rating below range",
			role:    policy.RoleStudent,
			input:   RatingInput{RateeID: uuidPtr(), Rating: 0, Type: model.RatingStudentToLecturer},
			wantErr: "validation",
		},
		{
			name:    "rating above range",
			role:    policy.RoleStudent,
			input:   RatingInput{RateeID: uuidPtr(), Rating: 6, Type: model.RatingStudentToLecturer},
			wantErr: "validation",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRatingRepo{}
			svc := NewRatingService(repo)
			ident := policy.Identity{UserID: uuid.New(), Role: tc.role}

			err := svc.Submit(ident, tc.input)

			switch tc.wantErr {
			case "":
				require.NoError(t, err)
				require.Len(t, repo.created, 1)
				assert.Equal(t, ident.UserID, repo.created[0].RaterID)
			case "forbidden":
				assert.ErrorIs(t, err, policy.ErrForbidden)
				assert.Empty(t, repo.created, "storage tidak boleh tersentuh")
			case "validation":
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Empty(t, repo.created, "storage tidak boleh tersentuh")
			}
		})
	}
}

func TestListRatings_ScopePerRole(t *testing.T) {
	repo := &fakeRatingRepo{}
	svc := NewRatingService(repo)

	student := policy.Identity{UserID: uuid.New(), Role: policy.RoleStudent}
	_, err := svc.List(student)
	require.NoError(t, err)
	assert.Equal(t, "rater_id = ?", repo.listScope.Expr)
	assert.Equal(t, []interface{}{student.UserID}, repo.listScope.Args)

	pl := policy.Identity{UserID: uuid.New(), Role: policy.RolePL}
	_, err = svc.List(pl)
	require.NoError(t, err)
	assert.True(t, repo.listScope.IsZero())
}
