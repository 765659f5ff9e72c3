package service

import (
	"testing"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo adalah UserRepository in-memory untuk test service.
type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListLecturers() ([]repository.LecturerOption, error) {
	rows := []repository.LecturerOption{}
	for _, u := range f.users {
		if u.Role == "lecturer" {
			rows = append(rows, repository.LecturerOption{ID: u.ID, Username: u.Username})
		}
	}
	return rows, nil
}

func strp(s string) *string { return &s }

func TestRegister_NormalizesRoleAndHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	err := svc.Register(RegisterInput{
		Username: "lecturer9",
		Password: "rahasia123",
		Role:     "Lecturer", // casing campur dari form registrasi
		Stream:   strp("Computer Science"),
	})
	require.NoError(t, err)
	require.Len(t, repo.users, 1)

	stored := repo.users[0]
	assert.Equal(t, "lecturer", stored.Role)
	assert.NotEqual(t, "rahasia123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("rahasia123")))
}

func TestRegister_UnknownRoleRejected(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	err := svc.Register(RegisterInput{Username: "x", Password: "y", Role: "admin"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.users, "storage tidak boleh tersentuh saat validasi gagal")
}

func TestRegister_StreamRequiredForLecturerAndPRL(t *testing.T) {
	for _, role := range []string{"lecturer", "prl"} {
		repo := &fakeUserRepo{}
		svc := NewAuthService(repo)

		err := svc.Register(RegisterInput{Username: "u", Password: "p", Role: role})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "role %s tanpa stream harus ditolak", role)
		assert.Empty(t, repo.users)
	}

	// student dan pl sah tanpa stream
	for _, role := range []string{"student", "pl"} {
		repo := &fakeUserRepo{}
		svc := NewAuthService(repo)
		require.NoError(t, svc.Register(RegisterInput{Username: "u", Password: "p", Role: role}))
	}
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	require.NoError(t, svc.Register(RegisterInput{
		Username: "prl1",
		Password: "password123",
		Role:     "PRL",
		Stream:   strp("Information Technology"),
	}))

	user, err := svc.Login("prl1", "password123")
	require.NoError(t, err)
	assert.Equal(t, "prl", user.Role)

	_, err = svc.Login("prl1", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("tidak-ada", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
