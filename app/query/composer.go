// Package query berisi composer untuk menyusun query baca secara dinamis.
//
// Semua endpoint list memakai pola yang sama: satu base statement plus nol
// atau lebih predikat opsional (scope role, search, filter exact-match).
// Builder di sini yang memegang state "sudah ada predikat atau belum",
// sehingga fragmen pertama memakai WHERE dan sisanya AND — tidak peduli
// predikat mana yang kebetulan hadir untuk request tertentu.
package query

import "strings"

// Predicate adalah satu fragmen kondisi SQL beserta argumennya.
// Zero value berarti "tanpa batasan" (misalnya scope milik pl).
type Predicate struct {
	Expr string
	Args []interface{}
}

// IsZero melaporkan apakah predikat ini kosong (tidak membatasi apa pun).
func (p Predicate) IsZero() bool {
	return p.Expr == ""
}

// Builder mengakumulasi fragmen kondisi untuk satu base statement.
// Fragmen disimpan sebagai daftar lalu digabung sekali di SQL(), bukan
// di-prefix satu per satu — menghindari bug "AND tanpa WHERE" ketika
// predikat scope absen tetapi filter lain hadir.
type Builder struct {
	base  string
	conds []string
	args  []interface{}
}

// New membuat Builder baru untuk base statement tertentu.
func New(base string) *Builder {
	return &Builder{base: base}
}

// Where menambahkan satu fragmen kondisi plus argumennya.
// Fragmen kosong diabaikan.
func (b *Builder) Where(expr string, args ...interface{}) *Builder {
	if expr == "" {
		return b
	}
	b.conds = append(b.conds, expr)
	b.args = append(b.args, args...)
	return b
}

// Scope menerapkan predikat scope role. Predikat zero (akses penuh)
// tidak menambahkan apa pun.
func (b *Builder) Scope(p Predicate) *Builder {
	if p.IsZero() {
		return b
	}
	return b.Where(p.Expr, p.Args...)
}

// SQL menggabungkan base + seluruh fragmen: " WHERE " sebelum fragmen
// pertama, " AND " sebelum setiap fragmen berikutnya.
func (b *Builder) SQL() string {
	if len(b.conds) == 0 {
		return b.base
	}
	return b.base + " WHERE " + strings.Join(b.conds, " AND ")
}

// Args mengembalikan seluruh argumen sesuai urutan fragmen ditambahkan.
func (b *Builder) Args() []interface{} {
	return b.args
}
