// File: internal/services/directory/data.go
package directory

import (
	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/services/intent"
	"github.com/gramcare/sahayak/internal/services/language"
)

// Static reference data for the Nabha service area. Loaded once, immutable
// for the process lifetime. English carries the full set of categories;
// Hindi and Punjabi carry translated general listings and fall back to the
// English data for the specialist categories.
var doctors = map[language.Language]map[intent.Specialization][]domain.Doctor{
	language.English: {
		intent.General: {
			{Name: "Dr. Rajesh Kumar", Specialization: "General Physician", Experience: "15 years", Phone: "+91-98765-43210", Availability: "Mon-Sat, 9 AM - 5 PM", Location: "Civil Hospital, Nabha"},
			{Name: "Dr. Simran Kaur", Specialization: "General Physician", Experience: "8 years", Phone: "+91-98765-43211", Availability: "Mon-Fri, 10 AM - 6 PM", Location: "Community Health Centre, Bhadson"},
		},
		intent.Cardiologist: {
			{Name: "Dr. Anil Sharma", Specialization: "Cardiologist", Experience: "20 years", Phone: "+91-98765-43212", Availability: "Tue & Thu, 10 AM - 2 PM", Location: "Heart Care Clinic, Patiala"},
		},
		intent.Dermatologist: {
			{Name: "Dr. Neha Gupta", Specialization: "Dermatologist", Experience: "10 years", Phone: "+91-98765-43213", Availability: "Mon, Wed, Fri, 11 AM - 4 PM", Location: "Skin Care Centre, Patiala"},
		},
		intent.Pediatrician: {
			{Name: "Dr. Harpreet Singh", Specialization: "Pediatrician", Experience: "12 years", Phone: "+91-98765-43214", Availability: "Mon-Sat, 9 AM - 1 PM", Location: "Child Care Clinic, Nabha"},
		},
		intent.Orthopedist: {
			{Name: "Dr. Vikram Mehta", Specialization: "Orthopedist", Experience: "18 years", Phone: "+91-98765-43215", Availability: "Wed & Sat, 10 AM - 3 PM", Location: "Bone & Joint Clinic, Patiala"},
		},
	},
	language.Hindi: {
		intent.General: {
			{Name: "डॉ. राजेश कुमार", Specialization: "सामान्य चिकित्सक", Experience: "15 वर्ष", Phone: "+91-98765-43210", Availability: "सोम-शनि, सुबह 9 - शाम 5", Location: "सिविल अस्पताल, नाभा"},
			{Name: "डॉ. सिमरन कौर", Specialization: "सामान्य चिकित्सक", Experience: "8 वर्ष", Phone: "+91-98765-43211", Availability: "सोम-शुक्र, सुबह 10 - शाम 6", Location: "सामुदायिक स्वास्थ्य केंद्र, भादसों"},
		},
	},
	language.Punjabi: {
		intent.General: {
			{Name: "ਡਾ. ਰਾਜੇਸ਼ ਕੁਮਾਰ", Specialization: "ਜਨਰਲ ਫਿਜ਼ੀਸ਼ੀਅਨ", Experience: "15 ਸਾਲ", Phone: "+91-98765-43210", Availability: "ਸੋਮ-ਸ਼ਨੀ, ਸਵੇਰੇ 9 - ਸ਼ਾਮ 5", Location: "ਸਿਵਲ ਹਸਪਤਾਲ, ਨਾਭਾ"},
			{Name: "ਡਾ. ਸਿਮਰਨ ਕੌਰ", Specialization: "ਜਨਰਲ ਫਿਜ਼ੀਸ਼ੀਅਨ", Experience: "8 ਸਾਲ", Phone: "+91-98765-43211", Availability: "ਸੋਮ-ਸ਼ੁੱਕਰ, ਸਵੇਰੇ 10 - ਸ਼ਾਮ 6", Location: "ਕਮਿਊਨਿਟੀ ਹੈਲਥ ਸੈਂਟਰ, ਭਾਦਸੋਂ"},
		},
	},
}

var ashaWorkers = map[language.Language][]domain.ASHAWorker{
	language.English: {
		{Name: "Sunita Devi", Area: "Nabha Block 1", Experience: "10 years", Specializations: []string{"Maternal care", "Child immunization"}, Phone: "+91-98765-43220", Availability: "Daily, 8 AM - 6 PM"},
		{Name: "Paramjit Kaur", Area: "Bhadson", Experience: "7 years", Specializations: []string{"Nutrition counselling", "First aid"}, Phone: "+91-98765-43221", Availability: "Mon-Sat, 9 AM - 5 PM"},
	},
	language.Hindi: {
		{Name: "सुनीता देवी", Area: "नाभा ब्लॉक 1", Experience: "10 वर्ष", Specializations: []string{"मातृ देखभाल", "बाल टीकाकरण"}, Phone: "+91-98765-43220", Availability: "प्रतिदिन, सुबह 8 - शाम 6"},
		{Name: "परमजीत कौर", Area: "भादसों", Experience: "7 वर्ष", Specializations: []string{"पोषण परामर्श", "प्राथमिक उपचार"}, Phone: "+91-98765-43221", Availability: "सोम-शनि, सुबह 9 - शाम 5"},
	},
	language.Punjabi: {
		{Name: "ਸੁਨੀਤਾ ਦੇਵੀ", Area: "ਨਾਭਾ ਬਲਾਕ 1", Experience: "10 ਸਾਲ", Specializations: []string{"ਮਾਂ ਦੀ ਦੇਖਭਾਲ", "ਬੱਚਿਆਂ ਦਾ ਟੀਕਾਕਰਨ"}, Phone: "+91-98765-43220", Availability: "ਰੋਜ਼ਾਨਾ, ਸਵੇਰੇ 8 - ਸ਼ਾਮ 6"},
		{Name: "ਪਰਮਜੀਤ ਕੌਰ", Area: "ਭਾਦਸੋਂ", Experience: "7 ਸਾਲ", Specializations: []string{"ਪੋਸ਼ਣ ਸਲਾਹ", "ਮੁੱਢਲੀ ਸਹਾਇਤਾ"}, Phone: "+91-98765-43221", Availability: "ਸੋਮ-ਸ਼ਨੀ, ਸਵੇਰੇ 9 - ਸ਼ਾਮ 5"},
	},
}

// labels holds the field labels rendered in listings, per language.
type labels struct {
	DoctorHeading   string
	ASHAHeading     string
	Name            string
	Specialization  string
	Experience      string
	Phone           string
	Availability    string
	Location        string
	Area            string
	Specializations string
}

var labelTable = map[language.Language]labels{
	language.English: {
		DoctorHeading:   "Available doctors",
		ASHAHeading:     "ASHA workers in your area",
		Name:            "Name",
		Specialization:  "Specialization",
		Experience:      "Experience",
		Phone:           "Phone",
		Availability:    "Availability",
		Location:        "Location",
		Area:            "Area",
		Specializations: "Specializations",
	},
	language.Hindi: {
		DoctorHeading:   "उपलब्ध डॉक्टर",
		ASHAHeading:     "आपके क्षेत्र की आशा कार्यकर्ता",
		Name:            "नाम",
		Specialization:  "विशेषज्ञता",
		Experience:      "अनुभव",
		Phone:           "फ़ोन",
		Availability:    "उपलब्धता",
		Location:        "स्थान",
		Area:            "क्षेत्र",
		Specializations: "विशेषज्ञताएँ",
	},
	language.Punjabi: {
		DoctorHeading:   "ਉਪਲਬਧ ਡਾਕਟਰ",
		ASHAHeading:     "ਤੁਹਾਡੇ ਇਲਾਕੇ ਦੀਆਂ ਆਸ਼ਾ ਵਰਕਰ",
		Name:            "ਨਾਮ",
		Specialization:  "ਮਾਹਰਤਾ",
		Experience:      "ਤਜਰਬਾ",
		Phone:           "ਫ਼ੋਨ",
		Availability:    "ਉਪਲਬਧਤਾ",
		Location:        "ਟਿਕਾਣਾ",
		Area:            "ਇਲਾਕਾ",
		Specializations: "ਮਾਹਰਤਾਵਾਂ",
	},
}

// suggestionReasons holds the per-language reason attached to a doctor
// suggestion, keyed by specialization.
var suggestionReasons = map[language.Language]map[intent.Specialization]string{
	language.English: {
		intent.General:       "A general physician can assess your symptoms and refer you if needed.",
		intent.Cardiologist:  "Your message mentions heart-related symptoms.",
		intent.Dermatologist: "Your message mentions skin-related symptoms.",
		intent.Pediatrician:  "Your message mentions a child's health.",
		intent.Orthopedist:   "Your message mentions bone or joint problems.",
	},
	language.Hindi: {
		intent.General:       "सामान्य चिकित्सक आपके लक्षणों की जाँच कर सकते हैं।",
		intent.Cardiologist:  "आपके संदेश में हृदय से जुड़े लक्षण हैं।",
		intent.Dermatologist: "आपके संदेश में त्वचा से जुड़े लक्षण हैं।",
		intent.Pediatrician:  "आपके संदेश में बच्चे के स्वास्थ्य की बात है।",
		intent.Orthopedist:   "आपके संदेश में हड्डी या जोड़ की समस्या है।",
	},
	language.Punjabi: {
		intent.General:       "ਜਨਰਲ ਫਿਜ਼ੀਸ਼ੀਅਨ ਤੁਹਾਡੇ ਲੱਛਣਾਂ ਦੀ ਜਾਂਚ ਕਰ ਸਕਦੇ ਹਨ।",
		intent.Cardiologist:  "ਤੁਹਾਡੇ ਸੁਨੇਹੇ ਵਿੱਚ ਦਿਲ ਨਾਲ ਜੁੜੇ ਲੱਛਣ ਹਨ।",
		intent.Dermatologist: "ਤੁਹਾਡੇ ਸੁਨੇਹੇ ਵਿੱਚ ਚਮੜੀ ਨਾਲ ਜੁੜੇ ਲੱਛਣ ਹਨ।",
		intent.Pediatrician:  "ਤੁਹਾਡੇ ਸੁਨੇਹੇ ਵਿੱਚ ਬੱਚੇ ਦੀ ਸਿਹਤ ਦੀ ਗੱਲ ਹੈ।",
		intent.Orthopedist:   "ਤੁਹਾਡੇ ਸੁਨੇਹੇ ਵਿੱਚ ਹੱਡੀ ਜਾਂ ਜੋੜ ਦੀ ਸਮੱਸਿਆ ਹੈ।",
	},
}
