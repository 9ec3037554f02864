package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewConnectionFromDB(db), mock
}

func TestProductRepository_GetQuantityForUpdate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, qtde *int, err error)
	}{
		{
			name: "Leitura segura a linha do produto com FOR UPDATE",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT qtde FROM produtos WHERE id = $1 FOR UPDATE")).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"qtde"}).AddRow(3))
			},
			validate: func(t *testing.T, qtde *int, err error) {
				require.NoError(t, err)
				require.NotNil(t, qtde)
				assert.Equal(t, 3, *qtde)
			},
		},
		{
			name: "Produto inexistente retorna nil sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT qtde FROM produtos WHERE id = $1 FOR UPDATE")).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"qtde"}))
			},
			validate: func(t *testing.T, qtde *int, err error) {
				require.NoError(t, err)
				assert.Nil(t, qtde)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewProductRepository(conn)
			qtde, err := repo.GetQuantityForUpdate(context.Background(), conn, 7)

			tt.validate(t, qtde, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_DecrementQuantity(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE produtos SET qtde = qtde - 1 WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewProductRepository(conn)
	err := repo.DecrementQuantity(context.Background(), conn, 7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListBelowQuantity(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectQuery("SELECT id, nome, preco, qtde FROM produtos WHERE qtde <").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "preco", "qtde"}).
			AddRow(3, "Pomada Modeladora", "24.50", 2).
			AddRow(1, "Shampoo", "29.90", 4))

	repo := NewProductRepository(conn)
	products, err := repo.ListBelowQuantity(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pomada Modeladora", products[0].Nome)
	assert.Equal(t, 2, products[0].Qtde)
	assert.NoError(t, mock.ExpectationsWereMet())
}
