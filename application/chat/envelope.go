package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muhammadheryan/student-marketplace/model"
)

const (
	VerifiedProductsStart = "VERIFIED_PRODUCTS_START"
	VerifiedProductsEnd   = "VERIFIED_PRODUCTS_END"
)

// verifiedProduct is the wire shape of a product inside the verified block.
type verifiedProduct struct {
	model.Product
	VCode string `json:"_vcode"`
}

// VerifiedContent is a parsed assistant message.
type VerifiedContent struct {
	Products []model.Product
	Text     string
	// Rejected counts entries whose verification code was missing or wrong.
	Rejected int
}

// VerificationCode identifies a product that was actually retrieved.
func VerificationCode(productID uint64) string {
	return fmt.Sprintf("VP%d", productID)
}

// BuildVerifiedContent wraps products in the verified block and appends text.
func BuildVerifiedContent(products []model.Product, text string) (string, error) {
	wrapped := make([]verifiedProduct, 0, len(products))
	for _, p := range products {
		wrapped = append(wrapped, verifiedProduct{Product: p, VCode: VerificationCode(p.ID)})
	}

	payload, err := json.Marshal(wrapped)
	if err != nil {
		return "", fmt.Errorf("marshal verified products: %w", err)
	}

	var b strings.Builder
	b.WriteString(VerifiedProductsStart)
	b.Write(payload)
	b.WriteString(VerifiedProductsEnd)
	if text != "" {
		b.WriteString("\n\n")
		b.WriteString(text)
	}
	return b.String(), nil
}

// ParseVerifiedContent extracts the verified block from content. Products
// whose _vcode does not equal "VP"+productID are dropped. Content without a
// block is returned as plain text.
func ParseVerifiedContent(content string) (*VerifiedContent, error) {
	start := strings.Index(content, VerifiedProductsStart)
	if start < 0 {
		return &VerifiedContent{Text: strings.TrimSpace(content)}, nil
	}
	bodyStart := start + len(VerifiedProductsStart)
	end := strings.Index(content[bodyStart:], VerifiedProductsEnd)
	if end < 0 {
		return nil, fmt.Errorf("verified products block is not terminated")
	}
	end += bodyStart

	var wrapped []verifiedProduct
	if err := json.Unmarshal([]byte(content[bodyStart:end]), &wrapped); err != nil {
		return nil, fmt.Errorf("unmarshal verified products: %w", err)
	}

	out := &VerifiedContent{
		Products: make([]model.Product, 0, len(wrapped)),
		Text:     strings.TrimSpace(content[:start] + content[end+len(VerifiedProductsEnd):]),
	}
	for _, w := range wrapped {
		if w.VCode != VerificationCode(w.ID) {
			out.Rejected++
			continue
		}
		out.Products = append(out.Products, w.Product)
	}
	return out, nil
}
