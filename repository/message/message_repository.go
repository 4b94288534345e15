package message

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
)

// ErrDuplicateKey is returned by InsertTx when the idempotency key already
// exists. The surrounding transaction is no longer usable after it.
var ErrDuplicateKey = errors.New("duplicate idempotency key")

const (
	defaultConversationLimit = 50
	maxConversationLimit     = 200
)

const messageColumns = "id, sender_id, receiver_id, product_id, content, idempotency_key, status, created_at"

type SQL struct {
	conn *sqlx.DB
}

type MessageRepository interface {
	GetByIdempotencyKey(ctx context.Context, key string) (*model.MessageEntity, error)
	GetByIdempotencyKeyTx(ctx context.Context, tx *sqlx.Tx, key string) (*model.MessageEntity, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, msg *model.MessageEntity) (uint64, error)
	ListConversation(ctx context.Context, filter *model.ConversationFilter) ([]model.MessageEntity, error)
	// MarkDelivered reports false when the message does not exist or was
	// already past the sent state.
	MarkDelivered(ctx context.Context, id uint64) (bool, error)
}

func NewMessageRepository(conn *sqlx.DB) MessageRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByIdempotencyKey(ctx context.Context, key string) (*model.MessageEntity, error) {
	return getByKey(ctx, r.conn, key)
}

func (r *SQL) GetByIdempotencyKeyTx(ctx context.Context, tx *sqlx.Tx, key string) (*model.MessageEntity, error) {
	return getByKey(ctx, tx, key)
}

func getByKey(ctx context.Context, q sqlx.QueryerContext, key string) (*model.MessageEntity, error) {
	var msg model.MessageEntity
	query := sqlx.Rebind(sqlx.BindType(driverName(q)), "SELECT "+messageColumns+" FROM messages WHERE idempotency_key = ?")
	if err := sqlx.GetContext(ctx, q, &msg, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, msg *model.MessageEntity) (uint64, error) {
	q := "INSERT INTO messages (sender_id, receiver_id, product_id, content, idempotency_key, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	args := []any{msg.SenderID, msg.ReceiverID, msg.ProductID, msg.Content, msg.IdempotencyKey, msg.Status, msg.CreatedAt}

	if tx.DriverName() == "postgres" {
		var id uint64
		if err := tx.QueryRowxContext(ctx, tx.Rebind(q+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, translateInsertError(err)
		}
		return id, nil
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(q), args...)
	if err != nil {
		return 0, translateInsertError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListConversation(ctx context.Context, filter *model.ConversationFilter) ([]model.MessageEntity, error) {
	var (
		where strings.Builder
		args  []any
	)
	where.WriteString("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))")
	args = append(args, filter.UserID, filter.OtherUserID, filter.OtherUserID, filter.UserID)
	if filter.ProductID != 0 {
		where.WriteString(" AND product_id = ?")
		args = append(args, filter.ProductID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	if limit > maxConversationLimit {
		limit = maxConversationLimit
	}
	args = append(args, limit)

	q := "SELECT " + messageColumns + " FROM messages WHERE " + where.String() + " ORDER BY created_at ASC, id ASC LIMIT ?"

	items := make([]model.MessageEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) MarkDelivered(ctx context.Context, id uint64) (bool, error) {
	q := "UPDATE messages SET status = ? WHERE id = ? AND status = ?"
	res, err := r.conn.ExecContext(ctx, r.conn.Rebind(q), constant.MessageStatusDelivered, id, constant.MessageStatusSent)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func driverName(q sqlx.QueryerContext) string {
	switch v := q.(type) {
	case *sqlx.DB:
		return v.DriverName()
	case *sqlx.Tx:
		return v.DriverName()
	}
	return ""
}

// translateInsertError maps unique violations from either driver to
// ErrDuplicateKey.
func translateInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateKey
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return ErrDuplicateKey
	}
	return err
}
