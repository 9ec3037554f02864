package registering

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidCPF          = errors.New("CPF deve conter exatamente 11 dígitos")
	ErrNegativeSalary      = errors.New("salário não pode ser negativo")
	ErrDuplicateCPF        = errors.New("CPF já cadastrado")
	ErrDatabaseOperation   = errors.New("erro de operação de banco de dados")
)

const uniqueViolationCode = "23505"

// isUniqueViolation identifica violação de constraint UNIQUE reportada pelo
// driver (CPF duplicado).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
