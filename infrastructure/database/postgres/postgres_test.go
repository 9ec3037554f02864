package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_RunInTransaction(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		fn       func(q Queryer) error
		validate func(t *testing.T, err error)
	}{
		{
			name: "Commit quando o callback retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE produtos").
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(q Queryer) error {
				_, err := q.Exec(context.Background(), "UPDATE produtos SET qtde = qtde - 1 WHERE id = $1", 7)
				return err
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Rollback quando o callback retorna erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(q Queryer) error {
				return errors.New("sem estoque")
			},
			validate: func(t *testing.T, err error) {
				assert.EqualError(t, err, "sem estoque")
			},
		},
		{
			name: "Erro no begin é devolvido sem executar o callback",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			fn: func(q Queryer) error {
				t.Fatal("callback não deveria ser executado")
				return nil
			},
			validate: func(t *testing.T, err error) {
				assert.EqualError(t, err, "too many connections")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			conn := NewConnectionFromDB(db)
			txErr := conn.RunInTransaction(context.Background(), tt.fn)

			tt.validate(t, txErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnection_RunInTransaction_PanicDesfazTransacao(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := NewConnectionFromDB(db)

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(Queryer) error {
			panic("falha inesperada")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
