package policy

import (
	"testing"

	"luct-reporting-backend/app/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identFor(role Role, stream string) Identity {
	return Identity{UserID: uuid.New(), Role: role, Stream: stream}
}

func TestCourseScope(t *testing.T) {
	assert.True(t, CourseScope(identFor(RoleStudent, "")).IsZero())
	assert.True(t, CourseScope(identFor(RolePL, "")).IsZero())

	p := CourseScope(identFor(RolePRL, "Information Technology"))
	assert.Equal(t, "stream = ?", p.Expr)
	assert.Equal(t, []interface{}{"Information Technology"}, p.Args)

	p = CourseScope(identFor(RoleLecturer, "Computer Science"))
	assert.Equal(t, "stream = ?", p.Expr)
	assert.Equal(t, []interface{}{"Computer Science"}, p.Args)
}

// Stream null direpresentasikan string kosong dan TIDAK menjadi wildcard:
// predikatnya tetap hadir dan hanya cocok dengan baris ber-stream kosong.
func TestCourseScope_EmptyStreamIsNotWildcard(t *testing.T) {
	p := CourseScope(identFor(RolePRL, ""))
	require.False(t, p.IsZero())
	assert.Equal(t, []interface{}{""}, p.Args)
}

func TestClassScope(t *testing.T) {
	lect := identFor(RoleLecturer, "Information Technology")
	p := ClassScope(lect)
	assert.Equal(t, "c.lecturer_id = ?", p.Expr)
	assert.Equal(t, []interface{}{lect.UserID}, p.Args)

	prl := identFor(RolePRL, "Information Technology")
	p = ClassScope(prl)
	assert.Equal(t, "c.stream = ?", p.Expr)

	assert.True(t, ClassScope(identFor(RoleStudent, "")).IsZero())
	assert.True(t, ClassScope(identFor(RolePL, "")).IsZero())
}

func TestReportScope(t *testing.T) {
	lect := identFor(RoleLecturer, "Information Technology")
	p := ReportScope(lect)
	assert.Equal(t, "r.lecturer_id = ?", p.Expr)
	assert.Equal(t, []interface{}{lect.UserID}, p.Args)

	prl := identFor(RolePRL, "Computer Science")
	p = ReportScope(prl)
	assert.Equal(t, "cl.stream = ?", p.Expr)
	assert.Equal(t, []interface{}{"Computer Science"}, p.Args)

	assert.True(t, ReportScope(identFor(RoleStudent, "")).IsZero())
	assert.True(t, ReportScope(identFor(RolePL, "")).IsZero())
}

func TestMonitoringScope_FollowsReportVisibility(t *testing.T) {
	lect := identFor(RoleLecturer, "Information Technology")
	p := MonitoringScope(lect)
	assert.Equal(t, "lecturer_id = ?", p.Expr)
	assert.Equal(t, []interface{}{lect.UserID}, p.Args)

	prl := identFor(RolePRL, "Information Technology")
	p = MonitoringScope(prl)
	assert.Contains(t, p.Expr, "EXISTS")
	assert.Contains(t, p.Expr, "cl.stream = ?")
	assert.Equal(t, []interface{}{"Information Technology"}, p.Args)

	assert.True(t, MonitoringScope(identFor(RolePL, "")).IsZero())
	assert.True(t, MonitoringScope(identFor(RoleStudent, "")).IsZero())
}

func TestRatingScope(t *testing.T) {
	student := identFor(RoleStudent, "")
	p := RatingScope(student)
	assert.Equal(t, "rater_id = ?", p.Expr)
	assert.Equal(t, []interface{}{student.UserID}, p.Args)

	lect := identFor(RoleLecturer, "Information Technology")
	p = RatingScope(lect)
	// Predikat OR harus dibungkus kurung supaya aman di-AND-kan dengan
	// fragmen lain oleh composer.
	require.True(t, len(p.Expr) > 1)
	assert.Equal(t, byte('('), p.Expr[0])
	assert.Equal(t, byte(')'), p.Expr[len(p.Expr)-1])
	assert.Equal(t, []interface{}{
		lect.UserID, model.RatingStudentToLecturer,
		lect.UserID, model.RatingLecturerToFacilities,
	}, p.Args)

	assert.True(t, RatingScope(identFor(RolePRL, "Information Technology")).IsZero())
	assert.True(t, RatingScope(identFor(RolePL, "")).IsZero())
}
