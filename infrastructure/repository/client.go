package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	_ "github.com/lib/pq"
)

const clientsTable = "clientes"

type ClientRepository interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error
	DeleteClient(ctx context.Context, clientID int) error
	GetClientByID(ctx context.Context, clientID int) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)

	// Exists roda sobre o Queryer recebido para que a checagem participe da
	// mesma transação da escrita que a segue.
	Exists(ctx context.Context, q postgres.Queryer, clientID int) (bool, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	queryBuilder := squirrel.
		Insert(clientsTable).
		Columns("nome", "cpf").
		Values(client.Nome, client.CPF).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(ctx, clientSQL, clientArgs...).Scan(&client.ID)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error {
	queryBuilder := squirrel.
		Update(clientsTable).
		Where(squirrel.Eq{"id": req.ID})

	if req.Nome != nil {
		queryBuilder = queryBuilder.Set("nome", *req.Nome)
	}

	if req.CPF != nil {
		queryBuilder = queryBuilder.Set("cpf", *req.CPF)
	}

	clientSQL, clientArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, clientSQL, clientArgs...)
	return err
}

func (r *clientRepository) DeleteClient(ctx context.Context, clientID int) error {
	queryBuilder := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": clientID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, clientSQL, clientArgs...)
	return err
}

func (r *clientRepository) GetClientByID(ctx context.Context, clientID int) (*domain.Client, error) {
	var client domain.Client
	err := r.conn.QueryRow(ctx, "SELECT id, nome, cpf FROM clientes WHERE id = $1", clientID).Scan(
		&client.ID,
		&client.Nome,
		&client.CPF,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "cpf").
		From(clientsTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, clientsSQL, clientsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Nome, &client.CPF); err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) Exists(ctx context.Context, q postgres.Queryer, clientID int) (bool, error) {
	var id int
	err := q.QueryRow(ctx, "SELECT id FROM clientes WHERE id = $1", clientID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
