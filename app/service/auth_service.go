package service

import (
	"errors"

	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput adalah data pendaftaran akun baru.
type RegisterInput struct {
	Username string
	Password string
	Role     string
	Stream   *string
}

// AuthService mendefinisikan layanan autentikasi portal.
type AuthService interface {
	Register(input RegisterInput) error
	Login(username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService menghubungkan Service dengan Repository.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Register mendaftarkan akun baru.
// Role dinormalkan ke lowercase kanonis di boundary ini: registrasi boleh
// mengirim "Lecturer"/"PRL", yang tersimpan dan dipakai otorisasi selalu
// "lecturer"/"prl". Lecturer dan prl wajib menyertakan stream.
func (s *authService) Register(input RegisterInput) error {
	role, err := policy.ParseRole(input.Role)
	if err != nil {
		return validationErrorf("invalid role: %v", err)
	}

	if role.NeedsStream() && (input.Stream == nil || *input.Stream == "") {
		return validationErrorf("stream is required for role %s", role)
	}

	// Hash password sebelum disimpan; plaintext tidak pernah menyentuh storage.
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username: input.Username,
		Password: string(hashed),
		Role:     string(role),
		Stream:   input.Stream,
	}

	return wrapStorage(s.userRepo.Create(&user))
}

// Login memeriksa pasangan username + password dan mengembalikan user-nya.
// Token JWT dibuat di handler dari user yang dikembalikan.
func (s *authService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, wrapStorage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
