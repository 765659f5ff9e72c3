package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials dikembalikan Login ketika username tidak ditemukan
// atau password tidak cocok. Pesannya sengaja tidak membedakan keduanya.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError menandai input yang gagal pemeriksaan presence/range/shape.
// Dipetakan handler ke HTTP 400. Pemeriksaan ini selalu berjalan SEBELUM
// storage dipanggil, sehingga tidak pernah ada partial write.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// StorageError membungkus kegagalan dari storage collaborator. Dipetakan
// handler ke HTTP 500; pesan upstream ikut ditampilkan (transparansi mode
// development, bukan security boundary).
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapStorage membungkus error non-nil menjadi StorageError.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}
