package mailer

import "strings"

// htmlEscaper replaces all five characters in one pass, so "&lt;" produced
// for "<" is never turned into "&amp;lt;".
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SanitizeInput escapes user supplied text before it is embedded in an email body
func SanitizeInput(input string) string {
	return htmlEscaper.Replace(input)
}
