package message_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appmessage "github.com/muhammadheryan/student-marketplace/application/message"
	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/muhammadheryan/student-marketplace/constant"
	messagemocks "github.com/muhammadheryan/student-marketplace/mocks/repository/message"
	productmocks "github.com/muhammadheryan/student-marketplace/mocks/repository/product"
	redismocks "github.com/muhammadheryan/student-marketplace/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/student-marketplace/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/student-marketplace/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-marketplace/model"
	messagerepo "github.com/muhammadheryan/student-marketplace/repository/message"
	cerr "github.com/muhammadheryan/student-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

const (
	buyerID  uint64 = 10
	sellerID uint64 = 20
	lampID   uint64 = 5
	window          = 10 * time.Second
	lockToken       = "lock-token"
)

func testConfig() *config.Config {
	return &config.Config{Message: config.MessageConfig{IdempotencyWindow: window}}
}

func lamp() *model.Product {
	return &model.Product{
		ID:               lampID,
		Name:             "Desk Lamp",
		Price:            15,
		Category:         constant.CategoryFurniture,
		Status:           constant.ProductStatusAvailable,
		ModerationStatus: constant.ModerationApproved,
		UserID:           sellerID,
	}
}

type fields struct {
	txRepo      *txmocks.TxRepository
	messageRepo *messagemocks.MessageRepository
	productRepo *productmocks.ProductRepository
	redisRepo   *redismocks.RedisRepository
	publisher   *rabbitmocks.MessagePublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		messageRepo: messagemocks.NewMessageRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
		publisher:   rabbitmocks.NewMessagePublisher(t),
	}
}

func (f fields) app() appmessage.MessageApp {
	return appmessage.NewMessageApp(testConfig(), f.txRepo, f.messageRepo, f.productRepo, f.redisRepo, f.publisher)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestMessageApp_ContactSeller(t *testing.T) {
	defaultKey := appmessage.IdempotencyKey(buyerID, sellerID, lampID, constant.DefaultContactMessage)
	stored := &model.MessageEntity{
		ID:             99,
		SenderID:       buyerID,
		ReceiverID:     sellerID,
		ProductID:      lampID,
		Content:        constant.DefaultContactMessage,
		IdempotencyKey: defaultKey,
		Status:         constant.MessageStatusSent,
	}

	tests := []struct {
		name          string
		senderID      uint64
		req           *model.ContactSellerRequest
		mockCall      func(f fields)
		wantID        uint64
		wantDuplicate bool
		wantErr       bool
		errCode       constant.ErrorType
	}{
		{
			name:     "success: first contact uses default text and publishes event",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return(lockToken, true, nil).Once()
				f.redisRepo.On("ReleaseLock", mock.Anything, defaultKey, lockToken).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, defaultKey).Return(nil, nil).Once()
				f.messageRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.MessageEntity) bool {
					return m.SenderID == buyerID &&
						m.ReceiverID == sellerID &&
						m.ProductID == lampID &&
						m.Content == constant.DefaultContactMessage &&
						m.Status == constant.MessageStatusSent &&
						m.IdempotencyKey == defaultKey &&
						!m.CreatedAt.IsZero()
				})).Return(uint64(99), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishMessageSent", mock.Anything, mock.MatchedBy(func(e model.MessageSentEvent) bool {
					return e.MessageID == 99 && e.SenderID == buyerID && e.ReceiverID == sellerID && e.ProductID == lampID
				})).Return(nil).Once()
			},
			wantID: 99,
		},
		{
			name:     "success: publish failure does not fail the send",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID, Content: "  Hi, I'm interested in your product "},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return(lockToken, true, nil).Once()
				f.redisRepo.On("ReleaseLock", mock.Anything, defaultKey, lockToken).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, defaultKey).Return(nil, nil).Once()
				f.messageRepo.On("InsertTx", mock.Anything, tx, mock.AnythingOfType("*model.MessageEntity")).Return(uint64(100), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishMessageSent", mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()
			},
			wantID: 100,
		},
		{
			name:     "duplicate: existing message found inside the transaction",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return(lockToken, true, nil).Once()
				f.redisRepo.On("ReleaseLock", mock.Anything, defaultKey, lockToken).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, defaultKey).Return(stored, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantID:        99,
			wantDuplicate: true,
		},
		{
			name:     "duplicate: lost the insert race to the unique constraint",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return(lockToken, true, nil).Once()
				f.redisRepo.On("ReleaseLock", mock.Anything, defaultKey, lockToken).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, defaultKey).Return(nil, nil).Once()
				f.messageRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), messagerepo.ErrDuplicateKey).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.messageRepo.On("GetByIdempotencyKey", mock.Anything, defaultKey).Return(stored, nil).Once()
			},
			wantID:        99,
			wantDuplicate: true,
		},
		{
			name:     "duplicate: lock held and first send already committed",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return("", false, nil).Once()
				f.messageRepo.On("GetByIdempotencyKey", mock.Anything, defaultKey).Return(stored, nil).Once()
			},
			wantID:        99,
			wantDuplicate: true,
		},
		{
			name:     "error: lock held and first send still running",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return("", false, nil).Once()
				f.messageRepo.On("GetByIdempotencyKey", mock.Anything, defaultKey).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrMessageInProgress,
		},
		{
			name:     "success: redis failure falls back to the database guard",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return("", false, errors.New("redis down")).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, defaultKey).Return(nil, nil).Once()
				f.messageRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(101), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishMessageSent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantID: 101,
		},
		{
			name:     "error: seller contacting own listing",
			senderID: sellerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrSelfContact,
		},
		{
			name:     "error: product not found",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: 404},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: product awaiting moderation",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				p := lamp()
				p.ModerationStatus = constant.ModerationPending
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(p, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductUnavailable,
		},
		{
			name:     "error: insert fails",
			senderID: buyerID,
			req:      &model.ContactSellerRequest{ProductID: lampID},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, defaultKey, window).Return(lockToken, true, nil).Once()
				f.redisRepo.On("ReleaseLock", mock.Anything, defaultKey, lockToken).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, defaultKey).Return(nil, nil).Once()
				f.messageRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("disk full")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ContactSeller(context.Background(), tt.senderID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ContactSeller() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Message.ID != tt.wantID {
				t.Fatalf("message id = %d, want %d", got.Message.ID, tt.wantID)
			}
			if got.Duplicate != tt.wantDuplicate {
				t.Fatalf("duplicate = %v, want %v", got.Duplicate, tt.wantDuplicate)
			}
		})
	}
}

func TestMessageApp_SendMessage(t *testing.T) {
	tests := []struct {
		name     string
		senderID uint64
		req      *model.SendMessageRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: seller replies to buyer",
			senderID: sellerID,
			req:      &model.SendMessageRequest{ReceiverID: buyerID, ProductID: lampID, Content: "Still available!"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				key := appmessage.IdempotencyKey(sellerID, buyerID, lampID, "Still available!")
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(lamp(), nil).Once()
				f.redisRepo.On("AcquireLock", mock.Anything, key, window).Return(lockToken, true, nil).Once()
				f.redisRepo.On("ReleaseLock", mock.Anything, key, lockToken).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.messageRepo.On("GetByIdempotencyKeyTx", mock.Anything, tx, key).Return(nil, nil).Once()
				f.messageRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.MessageEntity) bool {
					return m.SenderID == sellerID && m.ReceiverID == buyerID && m.Content == "Still available!"
				})).Return(uint64(7), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishMessageSent", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:     "error: blank content",
			senderID: buyerID,
			req:      &model.SendMessageRequest{ReceiverID: sellerID, ProductID: lampID, Content: "   "},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: message to self",
			senderID: buyerID,
			req:      &model.SendMessageRequest{ReceiverID: buyerID, ProductID: lampID, Content: "hello"},
			wantErr:  true,
			errCode:  constant.ErrSelfContact,
		},
		{
			name:     "error: product lookup fails",
			senderID: buyerID,
			req:      &model.SendMessageRequest{ReceiverID: sellerID, ProductID: lampID, Content: "hello"},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, lampID).Return(nil, errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			_, err := f.app().SendMessage(context.Background(), tt.senderID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SendMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestMessageApp_ListConversation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		filter := &model.ConversationFilter{UserID: buyerID, OtherUserID: sellerID, ProductID: lampID}
		want := []model.MessageEntity{{ID: 1, SenderID: buyerID, ReceiverID: sellerID, ProductID: lampID}}
		f.messageRepo.On("ListConversation", mock.Anything, filter).Return(want, nil).Once()

		got, err := f.app().ListConversation(context.Background(), filter)
		if err != nil {
			t.Fatalf("ListConversation() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("ListConversation() = %+v, want %+v", got, want)
		}
	})

	t.Run("error: missing other user", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().ListConversation(context.Background(), &model.ConversationFilter{UserID: buyerID})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestMessageApp_MarkDelivered(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.messageRepo.On("MarkDelivered", mock.Anything, uint64(3)).Return(true, nil).Once()
			},
		},
		{
			name: "error: unknown or already delivered",
			mockCall: func(f fields) {
				f.messageRepo.On("MarkDelivered", mock.Anything, uint64(3)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.messageRepo.On("MarkDelivered", mock.Anything, uint64(3)).Return(false, errors.New("boom")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().MarkDelivered(context.Background(), 3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkDelivered() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
