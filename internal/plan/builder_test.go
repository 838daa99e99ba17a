package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/internal/schema"
)

const telegramSchema = `
package: telegram
objects:
  - name: InlineQueryResultArticle
    parent: InlineQueryResult
    fields:
      - {name: type, type: string, const: article}
      - {name: title, type: string}
  - name: InlineQueryResult
    fields:
      - {name: type, type: string}
      - {name: id, type: string}
  - name: PhotoSize
    fields:
      - {name: file_id, type: string}
  - name: UserProfilePhotos
    fields:
      - {name: total_count, type: integer}
      - {name: photos, type: list of list of PhotoSize}
  - name: Message
    description: A message.
    link: https://core.telegram.org/bots/api#message
    fields:
      - {name: message_id, type: integer}
      - {name: text, type: string, optional: true}
      - {name: reply_to_message, type: Message, optional: true}
      - {name: string, type: string, optional: true}
functions:
  - name: send_message
    params:
      - {name: chat_id, type: integer | string}
      - {name: text, type: string}
      - {name: disable_notification, type: boolean, optional: true}
    returns: Message
  - name: edit_message_text
    params:
      - {name: text, type: string}
    returns: Message | boolean
  - name: get_me
    returns: boolean
`

func mustBuild(t *testing.T, yaml string) *BindingPlan {
	t.Helper()

	doc, err := schema.Parse([]byte(yaml))
	require.NoError(t, err)

	p, err := Build(doc)
	require.NoError(t, err)

	return p
}

func objectByName(t *testing.T, p *BindingPlan, name string) *ObjectPlan {
	t.Helper()

	for _, o := range p.Objects {
		if o.Name == name {
			return o
		}
	}

	t.Fatalf("object %s not in plan", name)

	return nil
}

func TestBuild_ParentsFirst(t *testing.T) {
	p := mustBuild(t, telegramSchema)

	names := make([]string, len(p.Objects))
	for i, o := range p.Objects {
		names[i] = o.Name
	}

	assert.Equal(t, []string{"InlineQueryResult", "InlineQueryResultArticle", "PhotoSize", "UserProfilePhotos", "Message"}, names)
	assert.Equal(t, "telegram", p.Package)
}

func TestBuild_FlattenOverride(t *testing.T) {
	p := mustBuild(t, telegramSchema)

	parent := objectByName(t, p, "InlineQueryResult")
	article := objectByName(t, p, "InlineQueryResultArticle")
	require.Same(t, parent, article.Parent)
	require.Len(t, article.Fields, 3)

	// The override keeps the inherited slot and Go name.
	assert.Equal(t, "type", article.Fields[0].Name)
	assert.Equal(t, "Type", article.Fields[0].GoName)
	assert.Equal(t, "InlineQueryResultArticle", article.Fields[0].Owner)
	assert.Equal(t, "fieldInlineQueryResultArticleType", article.Fields[0].Var)
	assert.Equal(t, "article", article.Fields[0].Const)
	assert.True(t, article.Fields[0].FillsConst())
	assert.Equal(t, `"article"`, article.Fields[0].ConstExpr())

	// Inherited fields are shared with the parent.
	assert.Same(t, parent.Fields[1], article.Fields[1])
	assert.False(t, article.Own(article.Fields[1]))
	assert.Equal(t, "title", article.Fields[2].Name)

	assert.Equal(t, []*FieldPlan{article.Fields[0]}, article.ConstFields())
}

func TestBuild_FieldKinds(t *testing.T) {
	p := mustBuild(t, telegramSchema)
	msg := objectByName(t, p, "Message")

	tests := []struct {
		field  string
		goName string
		kind   FieldKind
		goType string
		value  string
		take   string
	}{
		{"message_id", "MessageID", KindValue, "int64", "m.MessageID", "wire.Take(r, 0, &v.MessageID)"},
		{"text", "Text", KindPointer, "*string", "wire.Deref(m.Text)", "wire.TakePtr(r, 0, &v.Text)"},
		{"reply_to_message", "ReplyToMessage", KindNilable, "*Message", "m.ReplyToMessage", "wire.Take(r, 0, &v.ReplyToMessage)"},
		// "String" is a method name, so the member is renamed.
		{"string", "String2", KindPointer, "*string", "wire.Deref(m.String2)", "wire.TakePtr(r, 0, &v.String2)"},
	}

	require.Len(t, msg.Fields, len(tests))

	for i, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := msg.Fields[i]
			assert.Equal(t, tt.field, f.Name)
			assert.Equal(t, tt.goName, f.GoName)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.goType, f.GoType)
			assert.Equal(t, tt.value, f.ValueExpr("m"))
			assert.Equal(t, tt.take, f.TakeStmt("r", "v."+f.GoName))
		})
	}

	assert.Equal(t, "0", msg.Fields[0].ZeroExpr())
	assert.Equal(t, "nil", msg.Fields[1].ZeroExpr())
	assert.Equal(t, []string{"A message.", "", "See https://core.telegram.org/bots/api#message"}, msg.Doc)
	assert.Equal(t, "NewMessage", msg.Constructor)
	assert.Equal(t, "MessageFromWire", msg.FromWire)
	assert.Equal(t, "messageFieldNames", msg.NamesVar)
	assert.Equal(t, "codecMessage", msg.Codec)
}

func TestBuild_Codecs(t *testing.T) {
	p := mustBuild(t, telegramSchema)

	exprs := map[string]string{}
	order := map[string]int{}

	for i, c := range p.Codecs {
		exprs[c.Var] = c.Expr
		order[c.Var] = i
	}

	assert.Equal(t, `wire.Object[*PhotoSize]("PhotoSize", PhotoSizeFromWire)`, exprs["codecPhotoSize"])
	assert.Equal(t, "wire.List(codecPhotoSize)", exprs["codecListOfPhotoSize"])
	assert.Equal(t, "wire.List(codecListOfPhotoSize)", exprs["codecListOfListOfPhotoSize"])
	assert.Less(t, order["codecPhotoSize"], order["codecListOfPhotoSize"])
	assert.Less(t, order["codecListOfPhotoSize"], order["codecListOfListOfPhotoSize"])

	photos := objectByName(t, p, "UserProfilePhotos").Fields[1]
	assert.Equal(t, KindNilable, photos.Kind)
	assert.Equal(t, "[][]*PhotoSize", photos.GoType)
	assert.Equal(t, "codecListOfListOfPhotoSize", photos.Candidates[0].Codec)

	// Every object has a codec, even when nothing refers to it.
	assert.Contains(t, exprs, "codecInlineQueryResultArticle")
}

func TestBuild_Callables(t *testing.T) {
	p := mustBuild(t, telegramSchema)
	require.Len(t, p.Callables, 3)

	send := p.Callables[0]
	assert.Equal(t, "SendMessage", send.GoName)
	assert.Equal(t, "SendMessageRaw", send.RawName)
	assert.Equal(t, "SendMessageArgs", send.ArgsType)
	assert.Equal(t, "sendMessage", send.WireName)
	require.Len(t, send.Params, 3)

	chatID := send.Params[0]
	assert.Equal(t, KindUnion, chatID.Kind)
	assert.Equal(t, "*SendMessageChatID", chatID.GoType)
	assert.Equal(t, "paramSendMessageChatID", chatID.Var)
	assert.Equal(t, "a.ChatID.Value()", chatID.ValueExpr("a"))
	assert.Equal(t, "out = newSendMessageChatID(r)", chatID.TakeStmt("r", "out"))
	require.Len(t, chatID.Union.Members, 2)
	assert.Equal(t, "Integer", chatID.Union.Members[0].Member)
	assert.Equal(t, "*int64", chatID.Union.Members[0].MemberType)
	assert.Equal(t, "wire.Integer", chatID.Union.Members[0].Codec)
	assert.Equal(t, "String", chatID.Union.Members[1].Member)

	assert.Equal(t, KindPointer, send.Params[2].Kind)
	assert.Equal(t, "returnSendMessage", send.Return.Var)
	assert.Equal(t, "*Message", send.Return.GoType)

	edit := p.Callables[1]
	assert.Equal(t, "*EditMessageTextResult", edit.Return.GoType)
	assert.Equal(t, "Message", edit.Return.Union.Members[0].Member)
	assert.Equal(t, "*Message", edit.Return.Union.Members[0].MemberType)
	assert.Equal(t, "Boolean", edit.Return.Union.Members[1].Member)

	getMe := p.Callables[2]
	assert.False(t, getMe.HasArgs())
	assert.Equal(t, KindValue, getMe.Return.Kind)
	assert.Equal(t, "false", getMe.Return.ZeroExpr())

	assert.Len(t, p.Unions, 2)
}

func TestBuild_InvalidSchema(t *testing.T) {
	doc, err := schema.Parse([]byte("objects:\n  - name: A\n    fields:\n      - {name: b, type: Missing}\n"))
	require.NoError(t, err)

	p, err := Build(doc)
	require.ErrorIs(t, err, ErrInvalidSchema)
	require.NotNil(t, p)
	assert.Equal(t, []string{"unknown_type"}, p.Diagnostics.Codes())
}

func TestBuild_KeepsWarnings(t *testing.T) {
	p := mustBuild(t, "objects:\n  - name: A\n    fields:\n      - {name: b, type: integer | integer}\n")

	require.Len(t, p.Diagnostics.Warnings, 1)

	u := p.Objects[0].Fields[0].Union
	require.NotNil(t, u)
	assert.Equal(t, "Integer", u.Members[0].Member)
	assert.Equal(t, "Integer2", u.Members[1].Member)
}

func TestBuild_BooleanConstNotFilled(t *testing.T) {
	p := mustBuild(t, "objects:\n  - name: ForceReply\n    fields:\n      - {name: force_reply, type: boolean, const: true}\n")

	f := p.Objects[0].Fields[0]
	assert.True(t, f.HasConst())
	assert.Equal(t, "true", f.ConstExpr())
	assert.False(t, f.FillsConst())
	assert.Empty(t, p.Objects[0].ConstFields())
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, `"a\"b"`, literal(`a"b`))
	assert.Equal(t, "100", literal(100))
	assert.Equal(t, "1.5", literal(1.5))
	assert.Equal(t, "true", literal(true))
	assert.Equal(t, "nil", literal(nil))
}

func TestFieldKind_String(t *testing.T) {
	assert.Equal(t, "union", KindUnion.String())
	assert.Equal(t, "unknown", FieldKind(42).String())
}

func TestBuild_FilesAndDefaults(t *testing.T) {
	p := mustBuild(t, `
objects:
  - name: Message
    fields:
      - {name: message_id, type: integer}
functions:
  - name: send_photo
    params:
      - {name: photo, type: InputFile | string}
      - {name: thumb, type: InputFile, optional: true}
      - {name: disable_notification, type: boolean, optional: true, default: false}
    returns: Message
`)

	send := p.Callables[0]
	require.Len(t, send.Params, 3)

	photo := send.Params[0]
	require.NotNil(t, photo.Union)
	assert.Equal(t, "File", photo.Union.Members[0].Member)
	assert.Equal(t, "*wire.InputFile", photo.Union.Members[0].MemberType)
	assert.Equal(t, "wire.File", photo.Union.Members[0].Codec)
	assert.True(t, photo.Union.Members[0].Nilable)
	assert.Equal(t, "*string", photo.Union.Members[1].MemberType)

	thumb := send.Params[1]
	assert.Equal(t, KindNilable, thumb.Kind)
	assert.Equal(t, "*wire.InputFile", thumb.GoType)
	assert.Equal(t, "nil", thumb.ZeroExpr())
	assert.False(t, thumb.HasDefault())

	silent := send.Params[2]
	assert.Equal(t, KindPointer, silent.Kind)
	assert.True(t, silent.HasDefault())
	assert.Equal(t, "false", silent.DefaultExpr())

	// Builtin codecs are referenced directly, never declared.
	require.Len(t, p.Codecs, 1)
	assert.Equal(t, "codecMessage", p.Codecs[0].Var)
}
