package model

import (
	"time"

	"github.com/muhammadheryan/student-marketplace/constant"
)

type MessageEntity struct {
	ID             uint64                 `db:"id" json:"id"`
	SenderID       uint64                 `db:"sender_id" json:"sender_id"`
	ReceiverID     uint64                 `db:"receiver_id" json:"receiver_id"`
	ProductID      uint64                 `db:"product_id" json:"product_id"`
	Content        string                 `db:"content" json:"content"`
	IdempotencyKey string                 `db:"idempotency_key" json:"-"`
	Status         constant.MessageStatus `db:"status" json:"status"`
	CreatedAt      time.Time              `db:"created_at" json:"created_at"`
}

type SendMessageRequest struct {
	ReceiverID uint64 `json:"receiver_id" validate:"required"`
	ProductID  uint64 `json:"product_id" validate:"required"`
	Content    string `json:"content" validate:"required,notblank,max=2000"`
}

type ContactSellerRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Content   string `json:"content" validate:"max=2000"`
}

type SendMessageResponse struct {
	Message   *MessageEntity `json:"message"`
	Duplicate bool           `json:"duplicate"`
}

type ConversationFilter struct {
	UserID      uint64
	OtherUserID uint64
	ProductID   uint64
	Limit       int
}

type MessageSentEvent struct {
	MessageID  uint64    `json:"message_id"`
	SenderID   uint64    `json:"sender_id"`
	ReceiverID uint64    `json:"receiver_id"`
	ProductID  uint64    `json:"product_id"`
	SentAt     time.Time `json:"sent_at"`
}
