package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	_ "github.com/lib/pq"
)

const servicesTable = "servicos"

type ServiceRepository interface {
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, req *domain.UpdateServiceRequest) error
	DeleteService(ctx context.Context, serviceID int) error
	GetServiceByID(ctx context.Context, serviceID int) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	Exists(ctx context.Context, q postgres.Queryer, serviceID int) (bool, error)
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

func (r *serviceRepository) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	queryBuilder := squirrel.
		Insert(servicesTable).
		Columns("nome", "preco").
		Values(service.Nome, service.Preco).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	serviceSQL, serviceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(ctx, serviceSQL, serviceArgs...).Scan(&service.ID)
	if err != nil {
		return nil, err
	}

	return service, nil
}

func (r *serviceRepository) UpdateService(ctx context.Context, req *domain.UpdateServiceRequest) error {
	queryBuilder := squirrel.
		Update(servicesTable).
		Where(squirrel.Eq{"id": req.ID})

	if req.Nome != nil {
		queryBuilder = queryBuilder.Set("nome", *req.Nome)
	}

	if req.Preco != nil {
		queryBuilder = queryBuilder.Set("preco", *req.Preco)
	}

	serviceSQL, serviceArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, serviceSQL, serviceArgs...)
	return err
}

func (r *serviceRepository) DeleteService(ctx context.Context, serviceID int) error {
	queryBuilder := squirrel.
		Delete(servicesTable).
		Where(squirrel.Eq{"id": serviceID}).
		PlaceholderFormat(squirrel.Dollar)

	serviceSQL, serviceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, serviceSQL, serviceArgs...)
	return err
}

func (r *serviceRepository) GetServiceByID(ctx context.Context, serviceID int) (*domain.Service, error) {
	var service domain.Service
	err := r.conn.QueryRow(ctx, "SELECT id, nome, preco FROM servicos WHERE id = $1", serviceID).Scan(
		&service.ID,
		&service.Nome,
		&service.Preco,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *serviceRepository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "preco").
		From(servicesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	servicesSQL, servicesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, servicesSQL, servicesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Nome, &service.Preco); err != nil {
			return nil, err
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *serviceRepository) Exists(ctx context.Context, q postgres.Queryer, serviceID int) (bool, error) {
	var id int
	err := q.QueryRow(ctx, "SELECT id FROM servicos WHERE id = $1", serviceID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
