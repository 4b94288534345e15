package message

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	messagerepo "github.com/muhammadheryan/student-marketplace/repository/message"
	productrepo "github.com/muhammadheryan/student-marketplace/repository/product"
	redisrepo "github.com/muhammadheryan/student-marketplace/repository/redis"
	txrepo "github.com/muhammadheryan/student-marketplace/repository/tx"
	"github.com/muhammadheryan/student-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-marketplace/utils/errors"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	"go.uber.org/zap"
)

type MessageApp interface {
	// ContactSeller opens a conversation with the owner of a listing.
	ContactSeller(ctx context.Context, senderID uint64, req *model.ContactSellerRequest) (*model.SendMessageResponse, error)
	SendMessage(ctx context.Context, senderID uint64, req *model.SendMessageRequest) (*model.SendMessageResponse, error)
	ListConversation(ctx context.Context, filter *model.ConversationFilter) ([]model.MessageEntity, error)
	MarkDelivered(ctx context.Context, messageID uint64) error
}

type messageAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	messageRepo messagerepo.MessageRepository
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
	publisher   rabbitmq.MessagePublisher
	now         func() time.Time
}

// NewMessageApp wires the messaging flow. publisher may be nil, in which case
// messages stay in the sent state.
func NewMessageApp(config *config.Config, txRepo txrepo.TxRepository, messageRepo messagerepo.MessageRepository, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository, publisher rabbitmq.MessagePublisher) MessageApp {
	return &messageAppImpl{
		config:      config,
		txRepo:      txRepo,
		messageRepo: messageRepo,
		productRepo: productRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *messageAppImpl) ContactSeller(ctx context.Context, senderID uint64, req *model.ContactSellerRequest) (*model.SendMessageResponse, error) {
	product, err := s.availableProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.UserID == senderID {
		return nil, errors.SetCustomError(constant.ErrSelfContact)
	}

	content := trimContent(req.Content)
	if content == "" {
		content = constant.DefaultContactMessage
	}

	return s.send(ctx, &model.MessageEntity{
		SenderID:   senderID,
		ReceiverID: product.UserID,
		ProductID:  product.ID,
		Content:    content,
	})
}

func (s *messageAppImpl) SendMessage(ctx context.Context, senderID uint64, req *model.SendMessageRequest) (*model.SendMessageResponse, error) {
	content := trimContent(req.Content)
	if content == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.ReceiverID == senderID {
		return nil, errors.SetCustomError(constant.ErrSelfContact)
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[SendMessage] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil || product.IsDeleted {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return s.send(ctx, &model.MessageEntity{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		ProductID:  product.ID,
		Content:    content,
	})
}

func (s *messageAppImpl) availableProduct(ctx context.Context, productID uint64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[ContactSeller] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil || product.IsDeleted {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !product.IsSearchable() {
		return nil, errors.SetCustomError(constant.ErrProductUnavailable)
	}
	return product, nil
}

// send stores msg at most once per idempotency key. A repeat returns the
// stored message with Duplicate set.
func (s *messageAppImpl) send(ctx context.Context, msg *model.MessageEntity) (*model.SendMessageResponse, error) {
	key := IdempotencyKey(msg.SenderID, msg.ReceiverID, msg.ProductID, msg.Content)
	msg.IdempotencyKey = key

	token, locked, err := s.redisRepo.AcquireLock(ctx, key, s.config.Message.IdempotencyWindow)
	switch {
	case err != nil:
		// the unique constraint still holds without the lock
		logger.Warn("[send] error redisRepo.AcquireLock", zap.String("error", err.Error()))
	case !locked:
		return s.inFlight(ctx, key)
	default:
		defer func() {
			if err := s.redisRepo.ReleaseLock(ctx, key, token); err != nil {
				logger.Warn("[send] error redisRepo.ReleaseLock", zap.String("error", err.Error()))
			}
		}()
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[send] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.messageRepo.GetByIdempotencyKeyTx(ctx, tx, key)
	if err != nil {
		logger.Error("[send] error messageRepo.GetByIdempotencyKeyTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return &model.SendMessageResponse{Message: existing, Duplicate: true}, nil
	}

	msg.Status = constant.MessageStatusSent
	msg.CreatedAt = s.now().UTC()
	id, err := s.messageRepo.InsertTx(ctx, tx, msg)
	if err != nil {
		if stderrors.Is(err, messagerepo.ErrDuplicateKey) {
			// lost a race with a writer that bypassed the lock
			_ = s.txRepo.RollbackTx(tx)
			committed = true
			return s.existing(ctx, key)
		}
		logger.Error("[send] error messageRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	msg.ID = id

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[send] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishSent(ctx, msg)
	return &model.SendMessageResponse{Message: msg}, nil
}

// inFlight answers a caller that lost the lock: the first send either already
// committed or is still running.
func (s *messageAppImpl) inFlight(ctx context.Context, key string) (*model.SendMessageResponse, error) {
	existing, err := s.messageRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		logger.Error("[send] error messageRepo.GetByIdempotencyKey", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrMessageInProgress)
	}
	return &model.SendMessageResponse{Message: existing, Duplicate: true}, nil
}

func (s *messageAppImpl) existing(ctx context.Context, key string) (*model.SendMessageResponse, error) {
	existing, err := s.messageRepo.GetByIdempotencyKey(ctx, key)
	if err != nil || existing == nil {
		if err != nil {
			logger.Error("[send] error messageRepo.GetByIdempotencyKey", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.SendMessageResponse{Message: existing, Duplicate: true}, nil
}

func (s *messageAppImpl) publishSent(ctx context.Context, msg *model.MessageEntity) {
	if s.publisher == nil {
		return
	}
	event := model.MessageSentEvent{
		MessageID:  msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		ProductID:  msg.ProductID,
		SentAt:     msg.CreatedAt,
	}
	if err := s.publisher.PublishMessageSent(ctx, event); err != nil {
		logger.Error("[send] error publisher.PublishMessageSent", zap.Uint64("message_id", msg.ID), zap.String("error", err.Error()))
	}
}

func (s *messageAppImpl) ListConversation(ctx context.Context, filter *model.ConversationFilter) ([]model.MessageEntity, error) {
	if filter.UserID == 0 || filter.OtherUserID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	items, err := s.messageRepo.ListConversation(ctx, filter)
	if err != nil {
		logger.Error("[ListConversation] error messageRepo.ListConversation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *messageAppImpl) MarkDelivered(ctx context.Context, messageID uint64) error {
	updated, err := s.messageRepo.MarkDelivered(ctx, messageID)
	if err != nil {
		logger.Error("[MarkDelivered] error messageRepo.MarkDelivered", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
