// Package apperr содержит типы ошибок, общие для всех слоёв:
// доменный слой их создаёт, транспортный — переводит в коды gRPC.
package apperr

import "errors"

// BadRequestError — ошибка некорректных входных данных.
// Message показывается клиенту как есть.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// BadRequest создаёт ошибку некорректного запроса с заданным сообщением.
func BadRequest(msg string) *BadRequestError {
	return &BadRequestError{Message: msg}
}

// IsBadRequest сообщает, есть ли в цепочке err ошибка BadRequestError.
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}
