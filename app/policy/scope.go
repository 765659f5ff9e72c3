package policy

import (
	"luct-reporting-backend/app/model"
	"luct-reporting-backend/app/query"
)

// Fungsi-fungsi scope di file ini menghasilkan predikat row-level per
// resource. Ekspresi SQL-nya ditulis terhadap alias tabel yang dipakai
// query list di repository (courses tanpa alias; classes: c/co/u;
// reports: r/u/cl/co; monitoring: tabel reports polos).
//
// Predicate zero value berarti akses penuh (tanpa pembatasan baris).

// CourseScope: prl dan lecturer hanya melihat course di stream-nya sendiri;
// student dan pl melihat semua.
func CourseScope(id Identity) query.Predicate {
	switch id.Role {
	case RolePRL, RoleLecturer:
		return query.Predicate{Expr: "stream = ?", Args: []interface{}{id.Stream}}
	default:
		return query.Predicate{}
	}
}

// ClassScope: lecturer hanya kelas yang di-assign ke dirinya; prl hanya
// kelas ber-stream sama; student dan pl melihat semua.
func ClassScope(id Identity) query.Predicate {
	switch id.Role {
	case RoleLecturer:
		return query.Predicate{Expr: "c.lecturer_id = ?", Args: []interface{}{id.UserID}}
	case RolePRL:
		return query.Predicate{Expr: "c.stream = ?", Args: []interface{}{id.Stream}}
	default:
		return query.Predicate{}
	}
}

// ReportScope: lecturer hanya laporan miliknya sendiri; prl hanya laporan
// kelas ber-stream sama. Student tidak pernah submit laporan sehingga tidak
// ada scope kepemilikan yang berlaku; student dan pl melihat semua.
func ReportScope(id Identity) query.Predicate {
	switch id.Role {
	case RoleLecturer:
		return query.Predicate{Expr: "r.lecturer_id = ?", Args: []interface{}{id.UserID}}
	case RolePRL:
		return query.Predicate{Expr: "cl.stream = ?", Args: []interface{}{id.Stream}}
	default:
		return query.Predicate{}
	}
}

// MonitoringScope mengikuti aturan visibilitas reports, ditulis untuk query
// agregat yang berjalan di tabel reports tanpa join.
func MonitoringScope(id Identity) query.Predicate {
	switch id.Role {
	case RoleLecturer:
		return query.Predicate{Expr: "lecturer_id = ?", Args: []interface{}{id.UserID}}
	case RolePRL:
		return query.Predicate{
			Expr: "EXISTS (SELECT 1 FROM classes cl WHERE cl.id = reports.class_id AND cl.stream = ?)",
			Args: []interface{}{id.Stream},
		}
	default:
		return query.Predicate{}
	}
}

// RatingScope: student hanya rating yang ia buat sendiri; lecturer melihat
// rating student terhadap dirinya plus rating fasilitas yang ia buat;
// prl dan pl melihat semua.
func RatingScope(id Identity) query.Predicate {
	switch id.Role {
	case RoleStudent:
		return query.Predicate{Expr: "rater_id = ?", Args: []interface{}{id.UserID}}
	case RoleLecturer:
		return query.Predicate{
			Expr: "((ratee_id = ? AND type = ?) OR (rater_id = ? AND type = ?))",
			Args: []interface{}{
				id.UserID, model.RatingStudentToLecturer,
				id.UserID, model.RatingLecturerToFacilities,
			},
		}
	default:
		return query.Predicate{}
	}
}
