package selling

import (
	"context"

	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
)

// EntityValidator confirma a existência das entidades referenciadas por uma
// venda. Somente leitura. As checagens rodam sobre o Queryer recebido para
// participar da mesma visão transacional da escrita que as segue — sem isso
// haveria corrida entre "existência confirmada" e "linha removida antes do
// insert".
type EntityValidator interface {
	ClientExists(ctx context.Context, q postgres.Queryer, clientID int) (bool, error)
	ServiceExists(ctx context.Context, q postgres.Queryer, serviceID int) (bool, error)
	EmployeeExists(ctx context.Context, q postgres.Queryer, employeeID int) (bool, error)
}

type entityValidator struct {
	clients   repository.ClientRepository
	services  repository.ServiceRepository
	employees repository.EmployeeRepository
}

func NewEntityValidator(
	clients repository.ClientRepository,
	services repository.ServiceRepository,
	employees repository.EmployeeRepository,
) EntityValidator {
	return &entityValidator{
		clients:   clients,
		services:  services,
		employees: employees,
	}
}

func (v *entityValidator) ClientExists(ctx context.Context, q postgres.Queryer, clientID int) (bool, error) {
	return v.clients.Exists(ctx, q, clientID)
}

func (v *entityValidator) ServiceExists(ctx context.Context, q postgres.Queryer, serviceID int) (bool, error) {
	return v.services.Exists(ctx, q, serviceID)
}

func (v *entityValidator) EmployeeExists(ctx context.Context, q postgres.Queryer, employeeID int) (bool, error) {
	return v.employees.Exists(ctx, q, employeeID)
}
