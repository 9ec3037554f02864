package selling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository/mocks"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
)

// fakeTxManager executa o callback diretamente, serializado por um mutex para
// reproduzir o comportamento do lock de linha (FOR UPDATE) nos testes de
// concorrência.
type fakeTxManager struct {
	mu       sync.Mutex
	beginErr error
}

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(postgres.Queryer) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(nil)
}

func newTestService(
	txManager postgres.TransactionManager,
	validator EntityValidator,
	products repository.ProductRepository,
	sales repository.SaleRepository,
) *Service {
	return &Service{
		txManager:  txManager,
		validator:  validator,
		products:   products,
		sales:      sales,
		now:        func() time.Time { return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC) },
		newReceipt: func() (string, error) { return "Ab3xYz", nil },
	}
}

func intPtr(v int) *int {
	return &v
}

func TestService_RecordProductSale(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository)
		validate func(t *testing.T, sale *domain.ProductSale, err error)
	}{
		{
			name: "Venda registrada com sucesso decrementa o estoque em 1",
			setup: func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				products.EXPECT().GetQuantityForUpdate(gomock.Any(), gomock.Any(), 7).Return(intPtr(3), nil)
				sales.EXPECT().InsertProductSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(42, nil)
				products.EXPECT().DecrementQuantity(gomock.Any(), gomock.Any(), 7).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.ProductSale, err error) {
				require.NoError(t, err)
				require.NotNil(t, sale)
				assert.Equal(t, 42, sale.ID)
				assert.Equal(t, "Ab3xYz", sale.Recibo)
				assert.Equal(t, 1, sale.ClientID)
				assert.Equal(t, 7, sale.ProductID)
				assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), sale.DataVenda)
			},
		},
		{
			name: "Cliente inexistente interrompe a venda antes de tocar o estoque",
			setup: func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(false, nil)
			},
			validate: func(t *testing.T, sale *domain.ProductSale, err error) {
				assert.Nil(t, sale)

				var notFound *EntityNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, EntityClient, notFound.Kind)
				assert.Equal(t, 1, notFound.ID)
			},
		},
		{
			name: "Produto inexistente retorna entidade não encontrada",
			setup: func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				products.EXPECT().GetQuantityForUpdate(gomock.Any(), gomock.Any(), 7).Return(nil, nil)
			},
			validate: func(t *testing.T, sale *domain.ProductSale, err error) {
				assert.Nil(t, sale)

				var notFound *EntityNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, EntityProduct, notFound.Kind)
				assert.Equal(t, 7, notFound.ID)
			},
		},
		{
			name: "Produto com qtde zero retorna erro de estoque sem inserir venda",
			setup: func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				products.EXPECT().GetQuantityForUpdate(gomock.Any(), gomock.Any(), 7).Return(intPtr(0), nil)
			},
			validate: func(t *testing.T, sale *domain.ProductSale, err error) {
				assert.Nil(t, sale)

				var outOfStock *OutOfStockError
				require.ErrorAs(t, err, &outOfStock)
				assert.Equal(t, 7, outOfStock.ProductID)
			},
		},
		{
			name: "Falha no insert da venda é classificada como indisponibilidade de armazenamento",
			setup: func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				products.EXPECT().GetQuantityForUpdate(gomock.Any(), gomock.Any(), 7).Return(intPtr(3), nil)
				sales.EXPECT().InsertProductSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))
			},
			validate: func(t *testing.T, sale *domain.ProductSale, err error) {
				assert.Nil(t, sale)
				assert.ErrorIs(t, err, ErrStorageUnavailable)
			},
		},
		{
			name: "Falha no decremento desfaz a transação inteira",
			setup: func(validator *MockEntityValidator, products *mocks.MockProductRepository, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				products.EXPECT().GetQuantityForUpdate(gomock.Any(), gomock.Any(), 7).Return(intPtr(3), nil)
				sales.EXPECT().InsertProductSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(42, nil)
				products.EXPECT().DecrementQuantity(gomock.Any(), gomock.Any(), 7).Return(errors.New("deadlock detected"))
			},
			validate: func(t *testing.T, sale *domain.ProductSale, err error) {
				assert.Nil(t, sale)
				assert.ErrorIs(t, err, ErrStorageUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			validator := NewMockEntityValidator(ctrl)
			products := mocks.NewMockProductRepository(ctrl)
			sales := mocks.NewMockSaleRepository(ctrl)

			tt.setup(validator, products, sales)

			service := newTestService(&fakeTxManager{}, validator, products, sales)

			sale, err := service.RecordProductSale(ctx, 1, 7)
			tt.validate(t, sale, err)
		})
	}
}

func TestService_RecordProductSale_FalhaAoAbrirTransacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := NewMockEntityValidator(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	sales := mocks.NewMockSaleRepository(ctrl)

	txManager := &fakeTxManager{beginErr: errors.New("too many connections")}
	service := newTestService(txManager, validator, products, sales)

	sale, err := service.RecordProductSale(context.Background(), 1, 7)

	assert.Nil(t, sale)
	assert.ErrorIs(t, err, ErrTransactionFailed)
}

func TestService_RecordServiceSale(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(validator *MockEntityValidator, sales *mocks.MockSaleRepository)
		validate func(t *testing.T, sale *domain.ServiceSale, err error)
	}{
		{
			name: "Venda de serviço registrada com sucesso",
			setup: func(validator *MockEntityValidator, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				validator.EXPECT().ServiceExists(gomock.Any(), gomock.Any(), 2).Return(true, nil)
				validator.EXPECT().EmployeeExists(gomock.Any(), gomock.Any(), 3).Return(true, nil)
				sales.EXPECT().InsertServiceSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(9, nil)
			},
			validate: func(t *testing.T, sale *domain.ServiceSale, err error) {
				require.NoError(t, err)
				require.NotNil(t, sale)
				assert.Equal(t, 9, sale.ID)
				assert.Equal(t, "Ab3xYz", sale.Recibo)
				assert.Equal(t, 1, sale.ClientID)
				assert.Equal(t, 2, sale.ServiceID)
				assert.Equal(t, 3, sale.EmployeeID)
			},
		},
		{
			name: "Cliente inexistente é reportado antes das demais validações",
			setup: func(validator *MockEntityValidator, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(false, nil)
			},
			validate: func(t *testing.T, sale *domain.ServiceSale, err error) {
				assert.Nil(t, sale)

				var notFound *EntityNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, EntityClient, notFound.Kind)
			},
		},
		{
			name: "Serviço inexistente é reportado antes do funcionário",
			setup: func(validator *MockEntityValidator, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				validator.EXPECT().ServiceExists(gomock.Any(), gomock.Any(), 2).Return(false, nil)
			},
			validate: func(t *testing.T, sale *domain.ServiceSale, err error) {
				assert.Nil(t, sale)

				var notFound *EntityNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, EntityService, notFound.Kind)
				assert.Equal(t, 2, notFound.ID)
			},
		},
		{
			name: "Funcionário inexistente impede o registro",
			setup: func(validator *MockEntityValidator, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(true, nil)
				validator.EXPECT().ServiceExists(gomock.Any(), gomock.Any(), 2).Return(true, nil)
				validator.EXPECT().EmployeeExists(gomock.Any(), gomock.Any(), 3).Return(false, nil)
			},
			validate: func(t *testing.T, sale *domain.ServiceSale, err error) {
				assert.Nil(t, sale)

				var notFound *EntityNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, EntityEmployee, notFound.Kind)
				assert.Equal(t, 3, notFound.ID)
			},
		},
		{
			name: "Falha de banco na validação vira indisponibilidade de armazenamento",
			setup: func(validator *MockEntityValidator, sales *mocks.MockSaleRepository) {
				validator.EXPECT().ClientExists(gomock.Any(), gomock.Any(), 1).Return(false, errors.New("connection refused"))
			},
			validate: func(t *testing.T, sale *domain.ServiceSale, err error) {
				assert.Nil(t, sale)
				assert.ErrorIs(t, err, ErrStorageUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			validator := NewMockEntityValidator(ctrl)
			products := mocks.NewMockProductRepository(ctrl)
			sales := mocks.NewMockSaleRepository(ctrl)

			tt.setup(validator, sales)

			service := newTestService(&fakeTxManager{}, validator, products, sales)

			sale, err := service.RecordServiceSale(ctx, 1, 2, 3)
			tt.validate(t, sale, err)
		})
	}
}

// Fakes com estado para os cenários de esgotamento de estoque. O mutex do
// fakeTxManager faz o papel do lock de linha: cada venda enxerga a quantidade
// deixada pela anterior.
type stubValidator struct{}

func (stubValidator) ClientExists(context.Context, postgres.Queryer, int) (bool, error) {
	return true, nil
}

func (stubValidator) ServiceExists(context.Context, postgres.Queryer, int) (bool, error) {
	return true, nil
}

func (stubValidator) EmployeeExists(context.Context, postgres.Queryer, int) (bool, error) {
	return true, nil
}

type stubProductRepo struct {
	repository.ProductRepository
	qtde map[int]int
}

func (s *stubProductRepo) GetQuantityForUpdate(_ context.Context, _ postgres.Queryer, productID int) (*int, error) {
	q, ok := s.qtde[productID]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (s *stubProductRepo) DecrementQuantity(_ context.Context, _ postgres.Queryer, productID int) error {
	s.qtde[productID]--
	return nil
}

type stubSaleRepo struct {
	repository.SaleRepository
	inserted int
}

func (s *stubSaleRepo) InsertProductSale(context.Context, postgres.Queryer, *domain.ProductSale) (int, error) {
	s.inserted++
	return s.inserted, nil
}

func TestService_RecordProductSale_EsgotaEstoque(t *testing.T) {
	products := &stubProductRepo{qtde: map[int]int{7: 3}}
	sales := &stubSaleRepo{}
	service := newTestService(&fakeTxManager{}, stubValidator{}, products, sales)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sale, err := service.RecordProductSale(ctx, 1, 7)
		require.NoError(t, err)
		require.NotNil(t, sale)
	}

	// Quarta venda encontra o estoque zerado
	sale, err := service.RecordProductSale(ctx, 1, 7)
	assert.Nil(t, sale)

	var outOfStock *OutOfStockError
	require.ErrorAs(t, err, &outOfStock)

	assert.Equal(t, 0, products.qtde[7])
	assert.Equal(t, 3, sales.inserted)
}

func TestService_RecordProductSale_VendasConcorrentes(t *testing.T) {
	products := &stubProductRepo{qtde: map[int]int{7: 1}}
	sales := &stubSaleRepo{}
	service := newTestService(&fakeTxManager{}, stubValidator{}, products, sales)

	results := make(chan error, 2)
	var wg sync.WaitGroup

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.RecordProductSale(context.Background(), 1, 7)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var successes, stockouts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			var outOfStock *OutOfStockError
			require.ErrorAs(t, err, &outOfStock)
			stockouts++
		}
	}

	// Exatamente uma venda ganha a corrida; a outra encontra estoque zerado
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, stockouts)
	assert.Equal(t, 0, products.qtde[7])
	assert.Equal(t, 1, sales.inserted)
}
