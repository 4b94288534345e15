package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/muhammadheryan/student-marketplace/cmd/config"
)

const systemPrompt = `You are the shopping assistant of a student marketplace.
Only mention products listed between VERIFIED_PRODUCTS_START and VERIFIED_PRODUCTS_END.
When you mention a product, cite its _vcode in brackets, for example [VP12].
Never invent products, prices or sellers. If the block is empty or missing, say that nothing matched
and suggest a different search. Keep answers short and friendly.`

// Narrator phrases verified search results for the shopper.
type Narrator interface {
	Narrate(ctx context.Context, userMessage, verifiedContent string) (string, error)
}

type chatModelNarrator struct {
	chatModel model.ToolCallingChatModel
}

func NewNarrator(chatModel model.ToolCallingChatModel) Narrator {
	return &chatModelNarrator{chatModel: chatModel}
}

// NewOpenAINarrator returns nil when no API key is configured.
func NewOpenAINarrator(ctx context.Context, cfg config.OpenAIConfig) (Narrator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model: %w", err)
	}
	return NewNarrator(chatModel), nil
}

func (n *chatModelNarrator) Narrate(ctx context.Context, userMessage, verifiedContent string) (string, error) {
	var user strings.Builder
	user.WriteString("Customer message: ")
	user.WriteString(userMessage)
	if verifiedContent != "" {
		user.WriteString("\n\nSearch results:\n")
		user.WriteString(verifiedContent)
	}

	resp, err := n.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(user.String()),
	})
	if err != nil {
		return "", fmt.Errorf("generate narration: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}
