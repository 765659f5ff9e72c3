// Package policy berisi aturan role portal: normalisasi role, tabel izin
// operasi, dan fungsi scope visibilitas per resource.
//
// Scope dihitung sekali per request dan HANYA dari identity hasil verifikasi
// token — tidak pernah dari parameter kiriman client, supaya caller tidak
// bisa menaikkan visibilitasnya dengan mengirim id/stream user lain.
package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role portal. Representasi kanonis selalu lowercase.
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RolePRL      Role = "prl"
	RolePL       Role = "pl"
)

// ErrForbidden dikembalikan ketika role tidak punya izin untuk operasi.
var ErrForbidden = errors.New("forbidden")

// ParseRole menormalkan role mentah (registrasi menerima "Lecturer"/"PRL")
// ke bentuk kanonis lowercase, dan menolak role yang tidak dikenal.
func ParseRole(raw string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleStudent, RoleLecturer, RolePRL, RolePL:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// NeedsStream melaporkan apakah role wajib punya stream (lecturer dan prl).
func (r Role) NeedsStream() bool {
	return r == RoleLecturer || r == RolePRL
}

// Identity adalah hasil verifikasi token untuk satu request.
// Stream kosong ("") berarti user tanpa stream; kosong BUKAN wildcard.
type Identity struct {
	UserID uuid.UUID
	Role   Role
	Stream string
}

// Operation adalah operasi tulis/baca-terproteksi yang diatur tabel izin.
type Operation string

const (
	OpListLecturers  Operation = "users:list-lecturers"
	OpCreateCourse   Operation = "courses:create"
	OpAssignLecturer Operation = "classes:assign"
	OpSubmitReport   Operation = "reports:submit"
	OpReviewReport   Operation = "reports:review"
	OpSubmitRating   Operation = "ratings:submit"
)

// permissions memetakan operasi ke himpunan role yang diizinkan.
// Endpoint list/read tidak masuk tabel ini: semua role terautentikasi boleh,
// kontennya yang dibatasi lewat fungsi scope di bawah.
var permissions = map[Operation]map[Role]bool{
	OpListLecturers:  {RolePL: true},
	OpCreateCourse:   {RolePL: true},
	OpAssignLecturer: {RolePL: true},
	OpSubmitReport:   {RoleLecturer: true},
	OpReviewReport:   {RolePRL: true},
	OpSubmitRating:   {RoleStudent: true, RoleLecturer: true},
}

// Authorize memutuskan allow/deny untuk (role, operation).
func Authorize(role Role, op Operation) error {
	if !permissions[op][role] {
		return fmt.Errorf("%w: role %s may not %s", ErrForbidden, role, op)
	}
	return nil
}
