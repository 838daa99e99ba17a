package common

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are words written in upper case inside Go identifiers.
var initialisms = map[string]string{
	"api":  "API",
	"html": "HTML",
	"http": "HTTP",
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"ttl":  "TTL",
	"uri":  "URI",
	"url":  "URL",
	"uuid": "UUID",
	"xml":  "XML",
}

// SplitWords splits an identifier on separators and case transitions.
//   - "chat_id" -> ["chat", "id"]
//   - "InlineQueryResult" -> ["Inline", "Query", "Result"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func SplitWords(s string) []string {
	var (
		words   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if i > 0 && len(current) > 0 && startsWord(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return words
}

func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// End of an acronym: "XMLParser" splits before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// GoName returns the exported Go identifier for an authored name, applying
// common initialisms: "chat_id" -> "ChatID", "get_me" -> "GetMe".
func GoName(s string) string {
	title := cases.Title(language.English)

	var b strings.Builder
	for _, w := range SplitWords(s) {
		lower := strings.ToLower(w)
		if up, ok := initialisms[lower]; ok {
			b.WriteString(up)
			continue
		}

		b.WriteString(title.String(lower))
	}

	name := b.String()
	if name == "" {
		return "X"
	}

	if unicode.IsDigit([]rune(name)[0]) {
		name = "X" + name
	}

	return name
}

// UnexportedName returns GoName with the first word lowered, suitable for
// locals and unexported package identifiers. Keywords get a trailing "_".
func UnexportedName(s string) string {
	words := SplitWords(GoName(s))
	if len(words) == 0 {
		return "x"
	}

	words[0] = strings.ToLower(words[0])

	name := strings.Join(words, "")
	if token.Lookup(name).IsKeyword() {
		name += "_"
	}

	return name
}

// LowerCamel is the wire spelling of a method name: "send_message" ->
// "sendMessage". Initialisms are not applied.
func LowerCamel(s string) string {
	title := cases.Title(language.English)

	words := SplitWords(s)
	for i, w := range words {
		if i == 0 {
			words[i] = strings.ToLower(w)
			continue
		}

		words[i] = title.String(strings.ToLower(w))
	}

	return strings.Join(words, "")
}
