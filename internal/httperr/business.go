package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifica falhas de regra de negócio. Nenhuma delas é transitória:
// toda ocorrência reflete entrada inválida ou violação de regra, nunca retry.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Respond escreve a resposta HTTP correspondente a um BusinessError.
// Retorna false quando o erro não é de negócio (caller decide o fallback).
func Respond(c *gin.Context, err error, message string) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status := http.StatusBadRequest
	switch be.Kind {
	case KindConflict:
		status = http.StatusConflict
	case KindNotFound:
		status = http.StatusNotFound
	case KindForbidden:
		status = http.StatusForbidden
	}

	Write(c, status, be.Code, message)
	return true
}
