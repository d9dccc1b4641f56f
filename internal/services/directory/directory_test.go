package directory

import (
	"strings"
	"testing"

	"github.com/gramcare/sahayak/internal/services/intent"
	"github.com/gramcare/sahayak/internal/services/language"
)

func TestDoctorListingGeneralEnglish(t *testing.T) {
	svc := NewService()
	out := svc.DoctorListing(language.English, intent.General)

	if out == "" {
		t.Fatal("expected non-empty general listing")
	}
	for _, want := range []string{"Dr. Rajesh Kumar", "Name:", "Specialization:", "Experience:", "Availability:", "Location:"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorListingLocalizedLabels(t *testing.T) {
	svc := NewService()
	out := svc.DoctorListing(language.Hindi, intent.General)
	if !strings.Contains(out, "नाम:") {
		t.Errorf("hindi listing should use hindi labels:\n%s", out)
	}
	out = svc.DoctorListing(language.Punjabi, intent.General)
	if !strings.Contains(out, "ਨਾਮ:") {
		t.Errorf("punjabi listing should use punjabi labels:\n%s", out)
	}
}

// Hindi has no cardiologist entries; the lookup must fall back to the
// default English entry list for the category.
func TestDoctorListingCategoryFallback(t *testing.T) {
	svc := NewService()
	out := svc.DoctorListing(language.Hindi, intent.Cardiologist)
	if !strings.Contains(out, "Dr. Anil Sharma") {
		t.Fatalf("expected english cardiologist fallback, got:\n%s", out)
	}
}

func TestASHAListing(t *testing.T) {
	svc := NewService()
	out := svc.ASHAListing(language.Punjabi)
	if !strings.Contains(out, "ਸੁਨੀਤਾ ਦੇਵੀ") || !strings.Contains(out, "ਇਲਾਕਾ:") {
		t.Fatalf("unexpected punjabi asha listing:\n%s", out)
	}
}

func TestSuggest(t *testing.T) {
	svc := NewService()
	sug := svc.Suggest(language.English, intent.Cardiologist)
	if sug == nil {
		t.Fatal("expected a suggestion")
	}
	if sug.Name != "Dr. Anil Sharma" || sug.Category != "cardiologist" || sug.Reason == "" {
		t.Fatalf("unexpected suggestion: %+v", sug)
	}
}
