package match

import (
	"strings"

	"binding-generator/internal/common"
)

// NormalizeIdent folds an identifier for fuzzy comparison: words are split on
// separators and case transitions, lowered and joined.
//
//	"ChatID", "chat_id", "chat-Id" -> "chatid"
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words.
func TokenizeIdent(s string) []string {
	words := common.SplitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}
