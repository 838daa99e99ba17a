package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, yaml string) *Document {
	t.Helper()

	doc, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return doc
}

func TestValidate_Valid(t *testing.T) {
	doc := mustParse(t, `
objects:
  - name: Message
    fields:
      - {name: message_id, type: integer}
      - {name: reply_to_message, type: Message, optional: true}
  - name: Base
    fields:
      - {name: kind, type: string, const: base}
  - name: Derived
    parent: Base
    fields:
      - {name: kind, type: string, const: derived}
      - {name: limit, type: integer, optional: true, const: 100}
functions:
  - name: send_message
    params:
      - {name: chat_id, type: integer | string}
      - {name: disable_notification, type: boolean, optional: true, default: false}
    returns: Message | boolean
  - name: send_photo
    params:
      - {name: photo, type: InputFile | string}
    returns: Message
`)

	res := Validate(doc)
	assert.True(t, res.IsValid(), "%v", res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		code        string
		suggestions []string
	}{
		{
			name: "unknown type with suggestion",
			yaml: `
objects:
  - name: Message
    fields:
      - {name: reply_to_message, type: Mesage}`,
			code:        "unknown_type",
			suggestions: []string{"Message"},
		},
		{
			name: "unknown parent",
			yaml: `
objects:
  - name: InlineQueryResult
  - name: Article
    parent: InlineQueryResul`,
			code:        "unknown_parent",
			suggestions: []string{"InlineQueryResult"},
		},
		{
			name: "parent cycle",
			yaml: `
objects:
  - {name: A, parent: B}
  - {name: B, parent: A}`,
			code: "parent_cycle",
		},
		{
			name: "duplicate object",
			yaml: `
objects:
  - name: User
  - name: User`,
			code: "duplicate_object",
		},
		{
			name: "empty candidates",
			yaml: `
objects:
  - name: User
    fields:
      - {name: id, type: ""}`,
			code: "empty_candidates",
		},
		{
			name: "duplicate field",
			yaml: `
objects:
  - name: User
    fields:
      - {name: id, type: integer}
      - {name: id, key: ident, type: integer}`,
			code: "duplicate_field",
		},
		{
			name: "duplicate wire key",
			yaml: `
objects:
  - name: User
    fields:
      - {name: id, type: integer}
      - {name: user_id, key: id, type: integer}`,
			code: "duplicate_key",
		},
		{
			name: "constant mismatch",
			yaml: `
objects:
  - name: Article
    fields:
      - {name: type, type: integer, const: article}`,
			code: "constant_mismatch",
		},
		{
			name: "constant on list",
			yaml: `
objects:
  - name: Row
    fields:
      - {name: cells, type: list of string, const: x}`,
			code: "constant_mismatch",
		},
		{
			name: "reserved name",
			yaml: `
objects:
  - name: string`,
			code: "reserved_name",
		},
		{
			name: "builtin alias as name",
			yaml: `
objects:
  - name: InputFile`,
			code: "reserved_name",
		},
		{
			name: "default on required",
			yaml: `
functions:
  - name: get_updates
    params:
      - {name: limit, type: integer, default: 100}
    returns: boolean`,
			code: "default_on_required",
		},
		{
			name: "default mismatch",
			yaml: `
functions:
  - name: get_updates
    params:
      - {name: limit, type: integer, optional: true, default: many}
    returns: boolean`,
			code: "default_mismatch",
		},
		{
			name: "default differs from constant",
			yaml: `
functions:
  - name: get_updates
    params:
      - {name: limit, type: integer, optional: true, const: 100, default: 50}
    returns: boolean`,
			code: "default_mismatch",
		},
		{
			name: "file result",
			yaml: `
functions:
  - {name: download, returns: InputFile}`,
			code: "unreadable_result",
		},
		{
			name: "duplicate callable",
			yaml: `
functions:
  - {name: get_me, returns: boolean}
  - {name: get_me, returns: boolean}`,
			code: "duplicate_callable",
		},
		{
			name: "duplicate wire name",
			yaml: `
functions:
  - {name: get_me, returns: boolean}
  - {name: getMe, returns: boolean}`,
			code: "duplicate_wire_name",
		},
		{
			name: "callable without return type",
			yaml: `
functions:
  - name: get_me`,
			code: "empty_candidates",
		},
		{
			name: "missing field name",
			yaml: `
functions:
  - name: get_me
    params:
      - {type: integer}
    returns: boolean`,
			code: "missing_field_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml))
			require.True(t, res.HasErrors())
			assert.Contains(t, res.Codes(), tt.code)

			if tt.suggestions != nil {
				for _, e := range res.Errors {
					if e.Code == tt.code {
						assert.Equal(t, tt.suggestions, e.Suggestions)
					}
				}
			}
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	doc := mustParse(t, `
objects:
  - name: Base
    fields:
      - {name: kind, type: string}
  - name: Derived
    parent: Base
    fields:
      - {name: kind, key: type, type: string | string}
`)

	res := Validate(doc)
	assert.True(t, res.IsValid(), "%v", res.Error())

	codes := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		codes = append(codes, w.Code)
	}

	assert.ElementsMatch(t, []string{"duplicate_candidate", "override_changes_key"}, codes)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"schema_is_nil"}, res.Codes())
}

func TestIndex(t *testing.T) {
	doc := mustParse(t, `
objects:
  - {name: C, parent: B}
  - {name: A}
  - {name: B, parent: A}
  - {name: A}
functions:
  - {name: z, returns: boolean}
  - {name: a, returns: boolean}
`)

	idx := NewIndex(doc)
	assert.Equal(t, []string{"C", "A", "B"}, idx.ObjectNames())
	assert.Equal(t, []string{"A"}, idx.DuplicateObjects)

	c, ok := idx.Object("C")
	require.True(t, ok)

	chain, cycle := idx.Ancestors(c)
	assert.False(t, cycle)
	require.Len(t, chain, 2)
	assert.Equal(t, "B", chain[0].Name)
	assert.Equal(t, "A", chain[1].Name)

	callables := idx.Callables()
	require.Len(t, callables, 2)
	assert.Equal(t, "z", callables[0].Name)

	_, ok = idx.Callable("missing")
	assert.False(t, ok)
}
