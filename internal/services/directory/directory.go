// File: internal/services/directory/directory.go
package directory

import (
	"fmt"
	"strings"

	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/services/intent"
	"github.com/gramcare/sahayak/internal/services/language"
)

// Service renders listings from the static doctor and ASHA-worker directory.
// The directory is read-only; the service holds no mutable state and is safe
// for concurrent use.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// DoctorListing renders the doctors for the given language and category as a
// formatted multi-line string with localized field labels. A category absent
// for the language falls back to that language's general list, then to the
// English general list. Absent data renders as an empty string, never an
// error.
func (s *Service) DoctorListing(lang language.Language, spec intent.Specialization) string {
	entries := s.doctorsFor(lang, spec)
	if len(entries) == 0 {
		return ""
	}

	l := labelsFor(lang)
	var b strings.Builder
	b.WriteString(l.DoctorHeading)
	b.WriteString(":\n")
	for i, d := range entries {
		fmt.Fprintf(&b, "\n%d. %s: %s\n", i+1, l.Name, d.Name)
		fmt.Fprintf(&b, "   %s: %s\n", l.Specialization, d.Specialization)
		fmt.Fprintf(&b, "   %s: %s\n", l.Experience, d.Experience)
		fmt.Fprintf(&b, "   %s: %s\n", l.Phone, d.Phone)
		fmt.Fprintf(&b, "   %s: %s\n", l.Availability, d.Availability)
		fmt.Fprintf(&b, "   %s: %s\n", l.Location, d.Location)
	}
	return b.String()
}

// ASHAListing renders the ASHA workers for the given language.
func (s *Service) ASHAListing(lang language.Language) string {
	entries, ok := ashaWorkers[lang]
	if !ok {
		entries = ashaWorkers[language.English]
	}
	if len(entries) == 0 {
		return ""
	}

	l := labelsFor(lang)
	var b strings.Builder
	b.WriteString(l.ASHAHeading)
	b.WriteString(":\n")
	for i, w := range entries {
		fmt.Fprintf(&b, "\n%d. %s: %s\n", i+1, l.Name, w.Name)
		fmt.Fprintf(&b, "   %s: %s\n", l.Area, w.Area)
		fmt.Fprintf(&b, "   %s: %s\n", l.Experience, w.Experience)
		fmt.Fprintf(&b, "   %s: %s\n", l.Specializations, strings.Join(w.Specializations, ", "))
		fmt.Fprintf(&b, "   %s: %s\n", l.Availability, w.Availability)
	}
	return b.String()
}

// Suggest returns the first matching doctor as a suggestion for the reply
// envelope, or nil when the directory has no entry at all.
func (s *Service) Suggest(lang language.Language, spec intent.Specialization) *domain.DoctorSuggestion {
	entries := s.doctorsFor(lang, spec)
	if len(entries) == 0 {
		return nil
	}
	reasons, ok := suggestionReasons[lang]
	if !ok {
		reasons = suggestionReasons[language.English]
	}
	return &domain.DoctorSuggestion{
		Name:     entries[0].Name,
		Category: string(spec),
		Reason:   reasons[spec],
	}
}

func (s *Service) doctorsFor(lang language.Language, spec intent.Specialization) []domain.Doctor {
	if entries, ok := doctors[lang][spec]; ok {
		return entries
	}
	// Category absent for this language: fall back to the default English
	// entry list for the category, then to the English general list.
	if entries, ok := doctors[language.English][spec]; ok {
		return entries
	}
	return doctors[language.English][intent.General]
}

func labelsFor(lang language.Language) labels {
	if l, ok := labelTable[lang]; ok {
		return l
	}
	return labelTable[language.English]
}
