package message

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const keyContentRunes = 100

// IdempotencyKey hashes who is writing to whom about which product together
// with the start of the normalized content. Case and whitespace differences
// produce the same key.
func IdempotencyKey(senderID, receiverID, productID uint64, content string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(content), " "))
	if r := []rune(normalized); len(r) > keyContentRunes {
		normalized = string(r[:keyContentRunes])
	}

	var b strings.Builder
	b.WriteString(strconv.FormatUint(senderID, 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(receiverID, 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(productID, 10))
	b.WriteByte(':')
	b.WriteString(normalized)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func trimContent(s string) string {
	return strings.TrimSpace(s)
}
