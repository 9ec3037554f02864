package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	_ "github.com/lib/pq"
)

const (
	productSalesTable = "vendas_produtos"
	serviceSalesTable = "vendas_servicos"
)

// SaleRepository persiste vendas. Vendas são append-only: não há Update nem
// Delete aqui de propósito.
type SaleRepository interface {
	InsertProductSale(ctx context.Context, q postgres.Queryer, sale *domain.ProductSale) (int, error)
	InsertServiceSale(ctx context.Context, q postgres.Queryer, sale *domain.ServiceSale) (int, error)
	ListProductSales(ctx context.Context) ([]*domain.ProductSale, error)
	ListServiceSales(ctx context.Context) ([]*domain.ServiceSale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) InsertProductSale(ctx context.Context, q postgres.Queryer, sale *domain.ProductSale) (int, error) {
	queryBuilder := squirrel.
		Insert(productSalesTable).
		Columns("recibo", "data_venda", "id_cliente", "id_produto").
		Values(sale.Recibo, sale.DataVenda.Format(domain.SaleTimestampLayout), sale.ClientID, sale.ProductID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := q.QueryRow(ctx, saleSQL, saleArgs...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *saleRepository) InsertServiceSale(ctx context.Context, q postgres.Queryer, sale *domain.ServiceSale) (int, error) {
	queryBuilder := squirrel.
		Insert(serviceSalesTable).
		Columns("recibo", "data_venda", "id_cliente", "id_servico", "id_funcionario").
		Values(sale.Recibo, sale.DataVenda.Format(domain.SaleTimestampLayout), sale.ClientID, sale.ServiceID, sale.EmployeeID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := q.QueryRow(ctx, saleSQL, saleArgs...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *saleRepository) ListProductSales(ctx context.Context) ([]*domain.ProductSale, error) {
	queryBuilder := squirrel.
		Select("id", "recibo", "data_venda", "id_cliente", "id_produto").
		From(productSalesTable).
		OrderBy("data_venda DESC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, salesSQL, salesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.ProductSale
	for rows.Next() {
		var sale domain.ProductSale
		if err := rows.Scan(
			&sale.ID,
			&sale.Recibo,
			&sale.DataVenda,
			&sale.ClientID,
			&sale.ProductID,
		); err != nil {
			return nil, err
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *saleRepository) ListServiceSales(ctx context.Context) ([]*domain.ServiceSale, error) {
	queryBuilder := squirrel.
		Select("id", "recibo", "data_venda", "id_cliente", "id_servico", "id_funcionario").
		From(serviceSalesTable).
		OrderBy("data_venda DESC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, salesSQL, salesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.ServiceSale
	for rows.Next() {
		var sale domain.ServiceSale
		if err := rows.Scan(
			&sale.ID,
			&sale.Recibo,
			&sale.DataVenda,
			&sale.ClientID,
			&sale.ServiceID,
			&sale.EmployeeID,
		); err != nil {
			return nil, err
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
