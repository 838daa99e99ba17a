package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"chat_id", []string{"chat", "id"}},
		{"InlineQueryResult", []string{"Inline", "Query", "Result"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"list-of items", []string{"list", "of", "items"}},
		{"photo2x", []string{"photo2x"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitWords(tt.input))
		})
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"chat_id", "ChatID"},
		{"get_me", "GetMe"},
		{"is_bot", "IsBot"},
		{"reply_to_message", "ReplyToMessage"},
		{"InlineQueryResultArticle", "InlineQueryResultArticle"},
		{"thumb_url", "ThumbURL"},
		{"URL", "URL"},
		{"404_page", "X404Page"},
		{"", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoName(tt.input))
		})
	}
}

func TestUnexportedName(t *testing.T) {
	assert.Equal(t, "chatID", UnexportedName("chat_id"))
	assert.Equal(t, "message", UnexportedName("Message"))
	assert.Equal(t, "type_", UnexportedName("type"))
	assert.Equal(t, "urlPath", UnexportedName("url_path"))
}

func TestLowerCamel(t *testing.T) {
	assert.Equal(t, "sendMessage", LowerCamel("send_message"))
	assert.Equal(t, "getUserProfilePhotos", LowerCamel("get_user_profile_photos"))
	assert.Equal(t, "getMe", LowerCamel("getMe"))
	assert.Equal(t, "deleteWebhookUrl", LowerCamel("delete_webhook_URL"))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "telegram", PkgAlias("examples/telegram"))
	assert.Equal(t, "botapi", PkgAlias("./out/bot-api/"))
	assert.Empty(t, PkgAlias(""))
}

func TestDuplicates(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Duplicates([]string{"a", "b", "a", "b", "a", "c"}))
	assert.Empty(t, Duplicates([]int{1, 2, 3}))
}
