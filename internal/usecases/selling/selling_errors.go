package selling

import (
	"errors"
	"fmt"
)

// Tipos de entidade referenciados por uma venda
const (
	EntityClient   = "cliente"
	EntityProduct  = "produto"
	EntityService  = "servico"
	EntityEmployee = "funcionario"
)

var (
	// Erros de infraestrutura. Nunca expostos cru ao chamador da API; o
	// handler converte em resposta genérica 5xx.
	ErrStorageUnavailable = errors.New("erro de comunicação com o banco de dados")
	ErrTransactionFailed  = errors.New("erro ao concluir a transação de venda")
)

// EntityNotFoundError indica que a venda referenciou uma entidade inexistente.
// Kind e ID identificam a primeira referência ausente encontrada.
type EntityNotFoundError struct {
	Kind string
	ID   int
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %d não encontrado", e.Kind, e.ID)
}

// OutOfStockError indica venda de produto com qtde < 1 no instante do registro.
type OutOfStockError struct {
	ProductID int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("produto %d sem estoque", e.ProductID)
}

// saleError preserva erros de negócio e converte falhas de armazenamento em
// ErrStorageUnavailable, sem vazar diagnósticos internos.
func saleError(err error) error {
	if isBusinessError(err) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// txError classifica o erro devolvido pela unidade de trabalho: erros já
// classificados passam direto; falha de begin/commit vira ErrTransactionFailed.
func txError(err error) error {
	if isBusinessError(err) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
}

func isBusinessError(err error) bool {
	var notFound *EntityNotFoundError
	var outOfStock *OutOfStockError
	return errors.As(err, &notFound) || errors.As(err, &outOfStock)
}
