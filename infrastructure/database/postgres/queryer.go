package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto pela conexão quanto por uma transação aberta.
// Os repositórios recebem um Queryer quando a operação precisa enxergar a
// mesma visão transacional das escritas subsequentes.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// TransactionManager delimita uma unidade de trabalho atômica. O Queryer
// entregue ao callback opera dentro da transação; qualquer erro retornado
// desfaz tudo.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(Queryer) error) error
}
