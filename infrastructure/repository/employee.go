package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	_ "github.com/lib/pq"
)

const employeesTable = "funcionarios"

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, req *domain.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, employeeID int) error
	GetEmployeeByID(ctx context.Context, employeeID int) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	Exists(ctx context.Context, q postgres.Queryer, employeeID int) (bool, error)
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	queryBuilder := squirrel.
		Insert(employeesTable).
		Columns("nome", "cpf", "especialidade", "salario").
		Values(employee.Nome, employee.CPF, employee.Especialidade, employee.Salario).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	employeeSQL, employeeArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(ctx, employeeSQL, employeeArgs...).Scan(&employee.ID)
	if err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, req *domain.UpdateEmployeeRequest) error {
	queryBuilder := squirrel.
		Update(employeesTable).
		Where(squirrel.Eq{"id": req.ID})

	if req.Nome != nil {
		queryBuilder = queryBuilder.Set("nome", *req.Nome)
	}

	if req.CPF != nil {
		queryBuilder = queryBuilder.Set("cpf", *req.CPF)
	}

	if req.Especialidade != nil {
		queryBuilder = queryBuilder.Set("especialidade", *req.Especialidade)
	}

	if req.Salario != nil {
		queryBuilder = queryBuilder.Set("salario", *req.Salario)
	}

	employeeSQL, employeeArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, employeeSQL, employeeArgs...)
	return err
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, employeeID int) error {
	queryBuilder := squirrel.
		Delete(employeesTable).
		Where(squirrel.Eq{"id": employeeID}).
		PlaceholderFormat(squirrel.Dollar)

	employeeSQL, employeeArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, employeeSQL, employeeArgs...)
	return err
}

func (r *employeeRepository) GetEmployeeByID(ctx context.Context, employeeID int) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.conn.QueryRow(ctx, "SELECT id, nome, cpf, especialidade, salario FROM funcionarios WHERE id = $1", employeeID).Scan(
		&employee.ID,
		&employee.Nome,
		&employee.CPF,
		&employee.Especialidade,
		&employee.Salario,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

func (r *employeeRepository) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "cpf", "especialidade", "salario").
		From(employeesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	employeesSQL, employeesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, employeesSQL, employeesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Nome,
			&employee.CPF,
			&employee.Especialidade,
			&employee.Salario,
		); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepository) Exists(ctx context.Context, q postgres.Queryer, employeeID int) (bool, error) {
	var id int
	err := q.QueryRow(ctx, "SELECT id FROM funcionarios WHERE id = $1", employeeID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
