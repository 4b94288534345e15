package chat

import (
	"context"
	"regexp"
	"strings"

	"github.com/muhammadheryan/student-marketplace/application/search"
	"github.com/muhammadheryan/student-marketplace/constant"
	"github.com/muhammadheryan/student-marketplace/model"
	"github.com/muhammadheryan/student-marketplace/thirdparty/llm"
	"github.com/muhammadheryan/student-marketplace/utils/errors"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	"go.uber.org/zap"
)

const greetingReply = `Hi! I can help you find things on the marketplace. Try "show me electronics" or "textbooks under $30".`

var intentPhrases = []string{
	"show me", "looking for", "look for", "find", "search", "do you have", "what do you have",
	"buy", "need a", "need an", "want", "selling", "for sale", "any ", "cheap", "recommend",
}

var vcodePattern = regexp.MustCompile(`\bVP(\d+)\b`)

type ChatApp interface {
	Reply(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

type chatAppImpl struct {
	searchApp search.SearchApp
	narrator  llm.Narrator
}

// NewChatApp builds the assistant. narrator may be nil, in which case the
// deterministic template is the reply.
func NewChatApp(searchApp search.SearchApp, narrator llm.Narrator) ChatApp {
	return &chatAppImpl{searchApp: searchApp, narrator: narrator}
}

func (s *chatAppImpl) Reply(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if !isSearchIntent(msg) {
		return &model.ChatResponse{
			Content:  greetingReply,
			Reply:    s.narrate(ctx, msg, "", nil, greetingReply),
			Products: []model.Product{},
		}, nil
	}

	resp := s.searchApp.Search(ctx, msg)
	verification := search.VerifySearchMatch(resp.DisplayProducts, msg)

	content, err := BuildVerifiedContent(resp.DisplayProducts, resp.ResponseText)
	if err != nil {
		logger.Error("[Reply] error BuildVerifiedContent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Debug("[Reply] search done",
		zap.Uint64("user_id", req.UserID),
		zap.Int("products", len(resp.DisplayProducts)),
		zap.Bool("strong_match", verification.HasStrongMatch),
	)

	return &model.ChatResponse{
		Content:        content,
		Reply:          s.narrate(ctx, msg, content, resp.DisplayProducts, resp.ResponseText),
		Products:       resp.DisplayProducts,
		HasResults:     resp.HasResults,
		HasStrongMatch: verification.HasStrongMatch,
		PriceFilter:    resp.PriceFilter,
		IsSearch:       true,
	}, nil
}

// narrate asks the LLM to phrase the reply and falls back to the template
// when no narrator is configured, the call fails, or the narration cites a
// product that was not retrieved. A verified block echoed by the model is
// checked like any other citation and then stripped.
func (s *chatAppImpl) narrate(ctx context.Context, msg, content string, products []model.Product, fallback string) string {
	if s.narrator == nil {
		return fallback
	}
	text, err := s.narrator.Narrate(ctx, msg, content)
	if err != nil {
		logger.Warn("[Reply] error narrator.Narrate", zap.String("error", err.Error()))
		return fallback
	}

	parsed, err := ParseVerifiedContent(text)
	if err != nil {
		logger.Warn("[Reply] error ParseVerifiedContent", zap.String("error", err.Error()))
		return fallback
	}
	if parsed.Rejected > 0 || !allRetrieved(parsed.Products, products) {
		logger.Warn("[Reply] narration echoes an unverified product block", zap.Int("rejected", parsed.Rejected))
		return fallback
	}
	if parsed.Text == "" {
		return fallback
	}
	if code, ok := unknownCitation(parsed.Text, products); ok {
		logger.Warn("[Reply] narration cites unknown product", zap.String("vcode", code))
		return fallback
	}
	return parsed.Text
}

func allRetrieved(echoed, retrieved []model.Product) bool {
	ids := make(map[uint64]struct{}, len(retrieved))
	for _, p := range retrieved {
		ids[p.ID] = struct{}{}
	}
	for _, p := range echoed {
		if _, ok := ids[p.ID]; !ok {
			return false
		}
	}
	return true
}

// unknownCitation returns the first verification code in text that does not
// belong to one of products.
func unknownCitation(text string, products []model.Product) (string, bool) {
	known := make(map[string]struct{}, len(products))
	for _, p := range products {
		known[VerificationCode(p.ID)] = struct{}{}
	}
	for _, code := range vcodePattern.FindAllString(text, -1) {
		if _, ok := known[code]; !ok {
			return code, true
		}
	}
	return "", false
}

func isSearchIntent(msg string) bool {
	q := strings.ToLower(msg)
	for _, phrase := range intentPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return len(search.ExtractSearchTerms(msg)) > 0 || search.ExtractPriceFilter(msg) != nil
}
