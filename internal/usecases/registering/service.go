package registering

import (
	"context"
	"fmt"
	"unicode"

	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
)

// RegisteringService gerencia o cadastro de clientes e funcionários.
type RegisteringService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error
	DeleteClient(ctx context.Context, clientID int) error
	GetClient(ctx context.Context, clientID int) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)

	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, req *domain.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, employeeID int) error
	GetEmployee(ctx context.Context, employeeID int) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
}

type Service struct {
	clients   repository.ClientRepository
	employees repository.EmployeeRepository
}

func NewService(
	clients repository.ClientRepository,
	employees repository.EmployeeRepository,
) RegisteringService {
	return &Service{
		clients:   clients,
		employees: employees,
	}
}

func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.Nome == "" {
		return nil, fmt.Errorf("%w: nome", ErrMissingRequiredData)
	}
	if !validCPF(client.CPF) {
		return nil, ErrInvalidCPF
	}

	created, err := s.clients.CreateClient(ctx, client)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCPF
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return created, nil
}

func (s *Service) UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error {
	if req.Nome == nil && req.CPF == nil {
		return fmt.Errorf("%w: nenhum campo para atualizar", ErrMissingRequiredData)
	}
	if req.CPF != nil && !validCPF(*req.CPF) {
		return ErrInvalidCPF
	}

	if err := s.clients.UpdateClient(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCPF
		}
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

func (s *Service) DeleteClient(ctx context.Context, clientID int) error {
	if err := s.clients.DeleteClient(ctx, clientID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return nil
}

func (s *Service) GetClient(ctx context.Context, clientID int) (*domain.Client, error) {
	return s.clients.GetClientByID(ctx, clientID)
}

func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.ListClients(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee.Nome == "" {
		return nil, fmt.Errorf("%w: nome", ErrMissingRequiredData)
	}
	if !validCPF(employee.CPF) {
		return nil, ErrInvalidCPF
	}
	if employee.Salario.IsNegative() {
		return nil, ErrNegativeSalary
	}

	created, err := s.employees.CreateEmployee(ctx, employee)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCPF
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return created, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, req *domain.UpdateEmployeeRequest) error {
	if req.Nome == nil && req.CPF == nil && req.Especialidade == nil && req.Salario == nil {
		return fmt.Errorf("%w: nenhum campo para atualizar", ErrMissingRequiredData)
	}
	if req.CPF != nil && !validCPF(*req.CPF) {
		return ErrInvalidCPF
	}
	if req.Salario != nil && req.Salario.IsNegative() {
		return ErrNegativeSalary
	}

	if err := s.employees.UpdateEmployee(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCPF
		}
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

func (s *Service) DeleteEmployee(ctx context.Context, employeeID int) error {
	if err := s.employees.DeleteEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return nil
}

func (s *Service) GetEmployee(ctx context.Context, employeeID int) (*domain.Employee, error) {
	return s.employees.GetEmployeeByID(ctx, employeeID)
}

func (s *Service) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.ListEmployees(ctx)
}

// validCPF aceita exatamente 11 dígitos, sem máscara.
func validCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
