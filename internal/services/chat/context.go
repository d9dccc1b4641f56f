// File: internal/services/chat/context.go
package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/gramcare/sahayak/internal/services/language"
)

// Fixed instruction text prepended to every conversational prompt. One
// entry per language: response length cap, no-diagnosis policy, empathetic
// tone. Hindi and Punjabi instruct the model to answer in that language.
var systemPrompts = map[language.Language]string{
	language.English: "You are a caring health assistant for rural patients in Punjab, India. " +
		"Answer in English, in at most three short sentences. " +
		"Never give a diagnosis and never prescribe medicine; for anything serious, advise seeing a doctor or the local ASHA worker. " +
		"Be warm, simple and empathetic.",
	language.Hindi: "आप पंजाब, भारत के ग्रामीण मरीज़ों के लिए एक सहायक स्वास्थ्य सहायक हैं। " +
		"हिंदी में, अधिकतम तीन छोटे वाक्यों में उत्तर दें। " +
		"कभी निदान न करें और न ही दवा लिखें; गंभीर स्थिति में डॉक्टर या आशा कार्यकर्ता से मिलने की सलाह दें। " +
		"सरल, सहानुभूतिपूर्ण भाषा का प्रयोग करें।",
	language.Punjabi: "ਤੁਸੀਂ ਪੰਜਾਬ, ਭਾਰਤ ਦੇ ਪਿੰਡਾਂ ਦੇ ਮਰੀਜ਼ਾਂ ਲਈ ਇੱਕ ਮਦਦਗਾਰ ਸਿਹਤ ਸਹਾਇਕ ਹੋ। " +
		"ਪੰਜਾਬੀ ਵਿੱਚ, ਵੱਧ ਤੋਂ ਵੱਧ ਤਿੰਨ ਛੋਟੇ ਵਾਕਾਂ ਵਿੱਚ ਜਵਾਬ ਦਿਓ। " +
		"ਕਦੇ ਵੀ ਨਿਦਾਨ ਨਾ ਕਰੋ ਅਤੇ ਨਾ ਹੀ ਦਵਾਈ ਲਿਖੋ; ਗੰਭੀਰ ਹਾਲਤ ਵਿੱਚ ਡਾਕਟਰ ਜਾਂ ਆਸ਼ਾ ਵਰਕਰ ਨੂੰ ਮਿਲਣ ਦੀ ਸਲਾਹ ਦਿਓ। " +
		"ਸਰਲ ਅਤੇ ਹਮਦਰਦ ਭਾਸ਼ਾ ਵਰਤੋ।",
}

// SystemPrompt returns the fixed instruction text for a language, falling
// back to English for unknown tags.
func SystemPrompt(lang language.Language) string {
	if p, ok := systemPrompts[lang]; ok {
		return p
	}
	return systemPrompts[language.English]
}

// BuildPrompt concatenates the system prompt, the trimmed recent context and
// the user message into the single completion prompt. Each embedded history
// message is truncated to maxTurnRunes so a long transcript cannot crowd out
// the question.
func BuildPrompt(lang language.Language, history []Turn, message string, maxTurnRunes int) string {
	var b strings.Builder
	b.WriteString(SystemPrompt(lang))
	b.WriteString("\n")

	if len(history) > 0 {
		b.WriteString("\nRecent conversation:\n")
		for _, t := range history {
			label := "Patient"
			if t.Role == "assistant" {
				label = "Assistant"
			}
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(TruncateText(t.Message, maxTurnRunes))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nPatient: ")
	b.WriteString(message)
	b.WriteString("\nAssistant:")
	return b.String()
}

// TruncateText safely truncates a UTF-8 string to maxLen runes, preserving
// character integrity.
func TruncateText(input string, maxLen int) string {
	if input == "" || maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(input) <= maxLen {
		return input
	}

	var b strings.Builder
	count := 0
	for _, r := range input {
		if count >= maxLen {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}

// TruncateWithEllipsis caps a reply at maxLen runes, appending an ellipsis
// marker when anything was cut.
func TruncateWithEllipsis(input string, maxLen int) string {
	if utf8.RuneCountInString(input) <= maxLen {
		return input
	}
	return TruncateText(input, maxLen) + "..."
}
