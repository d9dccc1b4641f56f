// File: internal/services/intent/intent.go
package intent

import (
	"strings"

	"github.com/gramcare/sahayak/internal/services/language"
)

// Intent is the coarse classification of a user message.
type Intent string

const (
	DoctorRequest Intent = "doctor-request"
	ASHARequest   Intent = "asha-request"
	None          Intent = "none"
)

// Specialization is the coarse doctor category guessed from the message.
type Specialization string

const (
	Cardiologist  Specialization = "cardiologist"
	Dermatologist Specialization = "dermatologist"
	Pediatrician  Specialization = "pediatrician"
	Orthopedist   Specialization = "orthopedist"
	General       Specialization = "general"
)

var doctorKeywords = map[language.Language][]string{
	language.English: {"doctor", "specialist", "physician", "appointment", "consult"},
	language.Hindi:   {"डॉक्टर", "चिकित्सक", "daktar", "वैद्य"},
	language.Punjabi: {"ਡਾਕਟਰ", "ਵੈਦ", "daktar"},
}

var ashaKeywords = map[language.Language][]string{
	language.English: {"asha", "health worker", "anganwadi", "community worker"},
	language.Hindi:   {"आशा", "स्वास्थ्य कार्यकर्ता", "आंगनवाड़ी"},
	language.Punjabi: {"ਆਸ਼ਾ", "ਸਿਹਤ ਵਰਕਰ", "ਆਂਗਣਵਾੜੀ"},
}

// specializationRule pairs a specialization with the keywords that select it.
// The scan order is fixed; the first matching rule wins.
type specializationRule struct {
	Spec     Specialization
	Keywords []string
}

var specializationRules = map[language.Language][]specializationRule{
	language.English: {
		{Cardiologist, []string{"heart", "cardio", "bp", "blood pressure"}},
		{Dermatologist, []string{"skin", "rash", "dermat", "itch"}},
		{Pediatrician, []string{"child", "baby", "kid", "pediatr"}},
		{Orthopedist, []string{"bone", "joint", "fracture", "ortho", "knee"}},
	},
	language.Hindi: {
		{Cardiologist, []string{"दिल", "हृदय", "रक्तचाप"}},
		{Dermatologist, []string{"त्वचा", "खुजली", "दाने"}},
		{Pediatrician, []string{"बच्चा", "बच्चे", "शिशु"}},
		{Orthopedist, []string{"हड्डी", "जोड़", "घुटना"}},
	},
	language.Punjabi: {
		{Cardiologist, []string{"ਦਿਲ", "ਬਲੱਡ ਪ੍ਰੈਸ਼ਰ"}},
		{Dermatologist, []string{"ਚਮੜੀ", "ਖੁਜਲੀ"}},
		{Pediatrician, []string{"ਬੱਚਾ", "ਬੱਚੇ"}},
		{Orthopedist, []string{"ਹੱਡੀ", "ਜੋੜ", "ਗੋਡਾ"}},
	},
}

// Classify routes a message to an intent for the given language. Doctor
// keywords are checked before ASHA keywords: a message matching both sets is
// a doctor-request. That tie-break is load-bearing and covered by tests; do
// not reorder the checks.
func Classify(message string, lang language.Language) (Intent, Specialization) {
	lowered := strings.ToLower(message)

	if matchAny(lowered, keywordsFor(doctorKeywords, lang)) {
		return DoctorRequest, guessSpecialization(lowered, lang)
	}
	if matchAny(lowered, keywordsFor(ashaKeywords, lang)) {
		return ASHARequest, General
	}
	return None, General
}

// guessSpecialization scans the ordered rule list for the language; the
// first rule with a matching keyword wins, defaulting to general.
func guessSpecialization(lowered string, lang language.Language) Specialization {
	rules, ok := specializationRules[lang]
	if !ok {
		rules = specializationRules[language.English]
	}
	for _, rule := range rules {
		if matchAny(lowered, rule.Keywords) {
			return rule.Spec
		}
	}
	return General
}

func keywordsFor(table map[language.Language][]string, lang language.Language) []string {
	if kws, ok := table[lang]; ok {
		return kws
	}
	return table[language.English]
}

func matchAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
