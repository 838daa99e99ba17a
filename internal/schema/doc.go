// Package schema provides the descriptor model of an external API, its
// YAML/JSON loader and structural validation.
//
// # Schema Overview
//
// A schema file has the following structure:
//
//	version: "1"
//	package: telegram
//	objects:
//	  - name: InlineQueryResult
//	    fields:
//	      - {name: type, type: string}
//	      - {name: id, type: string}
//	  - name: InlineQueryResultArticle
//	    parent: InlineQueryResult     # parent fields come first
//	    fields:
//	      - {name: type, type: string, const: article}
//	      - {name: title, type: string}
//	      - {name: thumb_url, type: string, optional: true}
//	functions:
//	  - name: send_message            # wire name defaults to sendMessage
//	    params:
//	      - {name: chat_id, type: integer | string}
//	      - {name: text, type: string}
//	      - {name: reply_markup, type: InlineKeyboardMarkup | ForceReply, optional: true}
//	      - {name: disable_notification, type: boolean, optional: true, default: false}
//	    returns: Message
//	  - name: send_photo
//	    params:
//	      - {name: chat_id, type: integer | string}
//	      - {name: photo, type: InputFile | string}   # upload or file id
//	    returns: Message
//
// # Type strings
//
// Builtins are string (str), integer (int), float (number, "float number"),
// boolean (bool) and file (InputFile, "input file"). Any other identifier
// names an object. "list of" and "array of" prefixes nest, and candidates
// are separated by "|" or "or". Candidate order is significant: when a wire
// value fits several candidates, the first one declared wins. A file is only
// ever sent, so a file candidate never wins a read.
//
// # Defaults
//
// An optional field may carry a default, a scalar of one of its builtin
// candidates. The default is sent whenever the field holds no value.
package schema
