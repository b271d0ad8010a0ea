package apperror

import "fmt"

// AppError adalah error aplikasi yang membawa kode stabil untuk klien,
// pesan yang aman ditampilkan, dan status HTTP tujuan.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // penyebab asli (opsional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supaya errors.Is/As tembus ke penyebab asli
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap membungkus error lain menjadi AppError; nil tetap nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
