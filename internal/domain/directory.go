// File: internal/domain/directory.go
package domain

// Doctor is a static directory record. The directory is loaded once at
// startup and is immutable for the process lifetime.
type Doctor struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Phone          string `json:"phone"`
	Availability   string `json:"availability"`
	Location       string `json:"location"`
}

// ASHAWorker is a static record for a community health worker.
type ASHAWorker struct {
	Name            string   `json:"name"`
	Area            string   `json:"area"`
	Experience      string   `json:"experience"`
	Specializations []string `json:"specializations"`
	Phone           string   `json:"phone"`
	Availability    string   `json:"availability"`
}

// DoctorSuggestion is attached to an assistant reply when the user asked
// for a doctor.
type DoctorSuggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}
