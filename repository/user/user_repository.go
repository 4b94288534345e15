package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/student-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, email, campus, password_hash, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`
	getUserBase     = `SELECT id, name, email, campus, password_hash, created_at, updated_at FROM users WHERE 1 = 1`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	// lib/pq does not support LastInsertId
	if s.conn.DriverName() == "postgres" {
		var id uint64
		if err := s.conn.QueryRowxContext(ctx, s.conn.Rebind(insertUserQuery+" RETURNING id"),
			data.Name, data.Email, data.Campus, data.PasswordHash).Scan(&id); err != nil {
			return nil, err
		}
		data.ID = id
		return data, nil
	}

	result, err := s.conn.ExecContext(ctx, s.conn.Rebind(insertUserQuery), data.Name, data.Email, data.Campus, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns nil, nil when no user matches the filter.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND LOWER(email) = ?"
		args = append(args, strings.ToLower(filter.Email))
	}

	// Execute query
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, s.conn.Rebind(query), args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
