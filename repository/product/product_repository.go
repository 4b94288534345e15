package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/student-marketplace/model"
)

type SQL struct {
	conn    *sqlx.DB
	dialect dialect
}

// ProductRepository only ever reads listings; writes belong to the listing
// and moderation flows.
type ProductRepository interface {
	Search(ctx context.Context, query *model.ProductQuery) ([]model.Product, error)
	List(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn, dialect: dialectFor(conn.DriverName())}
}

func (s *SQL) Search(ctx context.Context, query *model.ProductQuery) ([]model.Product, error) {
	q, args := buildSearchQuery(s.dialect, query)

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, s.conn.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return items, nil
}

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	offset := (page - 1) * perPage

	b := newSelectBuilder(s.dialect)
	b.applyBaseFilters()
	q, args := b.build(s.dialect.ident("created_at")+" DESC, "+s.dialect.ident("productID")+" DESC", perPage)
	q += " OFFSET ?"
	args = append(args, offset)

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, s.conn.Rebind(q), args...); err != nil {
		return nil, 0, err
	}

	countQ, countArgs := b.count()
	var total int64
	if err := s.conn.GetContext(ctx, &total, s.conn.Rebind(countQ), countArgs...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	q := "SELECT " + s.dialect.columns() + " FROM products WHERE " + s.dialect.ident("productID") + " = ?"

	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, s.conn.Rebind(q), id).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
