package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	_ "github.com/lib/pq"
)

const productsTable = "produtos"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID int) error
	GetProductByID(ctx context.Context, productID int) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	ListBelowQuantity(ctx context.Context, threshold int) ([]*domain.Product, error)

	// GetQuantityForUpdate lê a quantidade atual segurando o lock da linha
	// (SELECT ... FOR UPDATE) até o fim da transação dona do Queryer. Retorna
	// nil quando o produto não existe.
	GetQuantityForUpdate(ctx context.Context, q postgres.Queryer, productID int) (*int, error)

	// DecrementQuantity reduz qtde em exatamente 1 dentro da transação dona
	// do Queryer.
	DecrementQuantity(ctx context.Context, q postgres.Queryer, productID int) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("nome", "preco", "qtde").
		Values(product.Nome, product.Preco, product.Qtde).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(ctx, productSQL, productArgs...).Scan(&product.ID)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Where(squirrel.Eq{"id": req.ID})

	if req.Nome != nil {
		queryBuilder = queryBuilder.Set("nome", *req.Nome)
	}

	if req.Preco != nil {
		queryBuilder = queryBuilder.Set("preco", *req.Preco)
	}

	if req.Qtde != nil {
		queryBuilder = queryBuilder.Set("qtde", *req.Qtde)
	}

	productSQL, productArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, productSQL, productArgs...)
	return err
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID int) error {
	queryBuilder := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, productSQL, productArgs...)
	return err
}

func (r *productRepository) GetProductByID(ctx context.Context, productID int) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow(ctx, "SELECT id, nome, preco, qtde FROM produtos WHERE id = $1", productID).Scan(
		&product.ID,
		&product.Nome,
		&product.Preco,
		&product.Qtde,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "preco", "qtde").
		From(productsTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryProducts(ctx, queryBuilder)
}

func (r *productRepository) ListBelowQuantity(ctx context.Context, threshold int) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "preco", "qtde").
		From(productsTable).
		Where(squirrel.Lt{"qtde": threshold}).
		OrderBy("qtde ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryProducts(ctx, queryBuilder)
}

func (r *productRepository) queryProducts(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Product, error) {
	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, productsSQL, productsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Nome,
			&product.Preco,
			&product.Qtde,
		); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetQuantityForUpdate(ctx context.Context, q postgres.Queryer, productID int) (*int, error) {
	var qtde int
	err := q.QueryRow(ctx, "SELECT qtde FROM produtos WHERE id = $1 FOR UPDATE", productID).Scan(&qtde)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &qtde, nil
}

func (r *productRepository) DecrementQuantity(ctx context.Context, q postgres.Queryer, productID int) error {
	_, err := q.Exec(ctx, "UPDATE produtos SET qtde = qtde - 1 WHERE id = $1", productID)
	return err
}
