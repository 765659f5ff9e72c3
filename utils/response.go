package utils

// APIResponse adalah format standar JSON yang diterima frontend portal.
// Contoh sukses : { "status": true,  "message": "Report submitted", "data": { ... } }
// Contoh gagal  : { "status": false, "message": "Forbidden", "errors": "role student may not reports:submit" }
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`   // omitempty: kalau data nil/kosong, field ini tidak dimunculkan
	Errors  interface{} `json:"errors,omitempty"` // bisa string / map / array tergantung kebutuhan
}

// BuildResponseSuccess digunakan saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed digunakan saat terjadi error (HTTP 400, 401, 403, 500).
// - message: pesan utama untuk user.
// - err    : detail error teknis (error storage ikut ditampilkan apa adanya,
//            sesuai mode transparansi development portal ini).
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}
