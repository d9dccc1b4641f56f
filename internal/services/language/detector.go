// File: internal/services/language/detector.go
package language

import (
	"strings"
	"unicode"
)

// Stop-words checked when a message carries no native script, for example
// romanized Hindi or Punjabi typed on an English keyboard. Matching is
// deliberately naive substring matching without tokenization, so a word can
// match inside a longer unrelated word. That imprecision is a documented
// property of the detector, not something to fix here.
var stopWords = map[Language][]string{
	Punjabi: {"ਮੈਨੂੰ", "ਹੈ", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "sat sri akal", "tuhanu", "mainu", "kiddan", "tusi"},
	Hindi:   {"मुझे", "है", "नमस्ते", "namaste", "mujhe", "bukhar", "kaise", "mera"},
	English: {"the", "is", "have", "what", "how", "please", "doctor", "pain"},
}

// Detect returns the best-guess language for a raw message. Script ranges
// win over stop-words, and Punjabi is checked before Hindi before English.
// Detect never fails; unrecognizable input defaults to english.
func Detect(text string) Language {
	if containsScript(text, unicode.Gurmukhi) || containsStopWord(text, Punjabi) {
		return Punjabi
	}
	if containsScript(text, unicode.Devanagari) || containsStopWord(text, Hindi) {
		return Hindi
	}
	if containsStopWord(text, English) {
		return English
	}
	return Default
}

func containsScript(text string, table *unicode.RangeTable) bool {
	for _, r := range text {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}

func containsStopWord(text string, lang Language) bool {
	lowered := strings.ToLower(text)
	for _, w := range stopWords[lang] {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
