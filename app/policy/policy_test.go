package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole_Normalization(t *testing.T) {
	cases := map[string]Role{
		"student":  RoleStudent,
		"Lecturer": RoleLecturer,
		"LECTURER": RoleLecturer,
		"PRL":      RolePRL,
		"Pl":       RolePL,
		" pl ":     RolePL,
	}

	for raw, want := range cases {
		got, err := ParseRole(raw)
		require.NoError(t, err, "ParseRole(%q)", raw)
		assert.Equal(t, want, got)
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, raw := range []string{"", "admin", "dosen", "pr"} {
		_, err := ParseRole(raw)
		assert.Error(t, err, "ParseRole(%q)", raw)
	}
}

func TestAuthorize_Table(t *testing.T) {
	allRoles := []Role{RoleStudent, RoleLecturer, RolePRL, RolePL}

	allowed := map[Operation][]Role{
		OpListLecturers:  {RolePL},
		OpCreateCourse:   {RolePL},
		OpAssignLecturer: {RolePL},
		OpSubmitReport:   {RoleLecturer},
		OpReviewReport:   {RolePRL},
		OpSubmitRating:   {RoleStudent, RoleLecturer},
	}

	for op, roles := range allowed {
		allowedSet := map[Role]bool{}
		for _, r := range roles {
			allowedSet[r] = true
		}

		for _, role := range allRoles {
			err := Authorize(role, op)
			if allowedSet[role] {
				assert.NoError(t, err, "%s should allow %s", op, role)
			} else {
				require.Error(t, err, "%s should deny %s", op, role)
				assert.ErrorIs(t, err, ErrForbidden)
			}
		}
	}
}
