// File: internal/services/language/language.go
package language

import "strings"

// Language is a tag from the small fixed set the assistant serves.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Punjabi Language = "punjabi"
)

// Default is used whenever a language cannot be determined.
const Default = English

// All lists the supported languages in detection priority order.
var All = []Language{Punjabi, Hindi, English}

// Parse normalizes a client-supplied language tag. The second return value
// is false for empty, "auto" or unknown tags, in which case the caller
// should run detection instead.
func Parse(tag string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case string(English):
		return English, true
	case string(Hindi):
		return Hindi, true
	case string(Punjabi):
		return Punjabi, true
	}
	return Default, false
}
