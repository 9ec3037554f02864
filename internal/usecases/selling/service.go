package selling

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	"github.com/JohnnyAlysson/store-manager-api/pkg/utils"
)

// SellingService executa o registro atômico de vendas.
type SellingService interface {
	RecordProductSale(ctx context.Context, clientID, productID int) (*domain.ProductSale, error)
	RecordServiceSale(ctx context.Context, clientID, serviceID, employeeID int) (*domain.ServiceSale, error)
	ListProductSales(ctx context.Context) ([]*domain.ProductSale, error)
	ListServiceSales(ctx context.Context) ([]*domain.ServiceSale, error)
}

type Service struct {
	txManager postgres.TransactionManager
	db        postgres.Queryer
	validator EntityValidator
	products  repository.ProductRepository
	sales     repository.SaleRepository

	now        func() time.Time
	newReceipt func() (string, error)
}

func NewService(
	txManager postgres.TransactionManager,
	db postgres.Queryer,
	validator EntityValidator,
	products repository.ProductRepository,
	sales repository.SaleRepository,
) SellingService {
	return &Service{
		txManager:  txManager,
		db:         db,
		validator:  validator,
		products:   products,
		sales:      sales,
		now:        time.Now,
		newReceipt: utils.GenerateID,
	}
}

// RecordProductSale valida cliente e produto, checa o estoque e grava a venda
// decrementando qtde em 1, tudo dentro de uma única transação. A leitura de
// qtde segura o lock da linha do produto (FOR UPDATE), então duas vendas
// concorrentes do mesmo produto com qtde = 1 terminam em exatamente um
// sucesso e um OutOfStockError.
func (s *Service) RecordProductSale(ctx context.Context, clientID, productID int) (*domain.ProductSale, error) {
	var sale *domain.ProductSale

	err := s.txManager.RunInTransaction(ctx, func(q postgres.Queryer) error {
		ok, err := s.validator.ClientExists(ctx, q, clientID)
		if err != nil {
			return saleError(err)
		}
		if !ok {
			return &EntityNotFoundError{Kind: EntityClient, ID: clientID}
		}

		qtde, err := s.products.GetQuantityForUpdate(ctx, q, productID)
		if err != nil {
			return saleError(err)
		}
		if qtde == nil {
			return &EntityNotFoundError{Kind: EntityProduct, ID: productID}
		}
		if *qtde < 1 {
			return &OutOfStockError{ProductID: productID}
		}

		recibo, err := s.newReceipt()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar recibo da venda")
		}

		sale = &domain.ProductSale{
			Recibo:    recibo,
			DataVenda: s.now().UTC().Truncate(time.Second),
			ClientID:  clientID,
			ProductID: productID,
		}

		id, err := s.sales.InsertProductSale(ctx, q, sale)
		if err != nil {
			return saleError(err)
		}
		sale.ID = id

		if err := s.products.DecrementQuantity(ctx, q, productID); err != nil {
			return saleError(err)
		}

		return nil
	})
	if err != nil {
		return nil, txError(err)
	}

	return sale, nil
}

// RecordServiceSale valida cliente, serviço e funcionário, nessa ordem, e
// grava a venda. Serviços não têm estoque: a única escrita é o próprio
// insert, atômico por si só, então não há transação explícita aqui.
func (s *Service) RecordServiceSale(ctx context.Context, clientID, serviceID, employeeID int) (*domain.ServiceSale, error) {
	ok, err := s.validator.ClientExists(ctx, s.db, clientID)
	if err != nil {
		return nil, saleError(err)
	}
	if !ok {
		return nil, &EntityNotFoundError{Kind: EntityClient, ID: clientID}
	}

	ok, err = s.validator.ServiceExists(ctx, s.db, serviceID)
	if err != nil {
		return nil, saleError(err)
	}
	if !ok {
		return nil, &EntityNotFoundError{Kind: EntityService, ID: serviceID}
	}

	ok, err = s.validator.EmployeeExists(ctx, s.db, employeeID)
	if err != nil {
		return nil, saleError(err)
	}
	if !ok {
		return nil, &EntityNotFoundError{Kind: EntityEmployee, ID: employeeID}
	}

	recibo, err := s.newReceipt()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar recibo da venda")
	}

	sale := &domain.ServiceSale{
		Recibo:     recibo,
		DataVenda:  s.now().UTC().Truncate(time.Second),
		ClientID:   clientID,
		ServiceID:  serviceID,
		EmployeeID: employeeID,
	}

	id, err := s.sales.InsertServiceSale(ctx, s.db, sale)
	if err != nil {
		return nil, saleError(err)
	}
	sale.ID = id

	return sale, nil
}

func (s *Service) ListProductSales(ctx context.Context) ([]*domain.ProductSale, error) {
	return s.sales.ListProductSales(ctx)
}

func (s *Service) ListServiceSales(ctx context.Context) ([]*domain.ServiceSale, error) {
	return s.sales.ListServiceSales(ctx)
}
