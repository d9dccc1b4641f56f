// File: internal/services/fallback/bank.go
package fallback

import (
	"strings"

	"github.com/gramcare/sahayak/internal/services/language"
)

// The bank is the canned advice served when the LLM provider is unreachable
// or rate-limited. It never errors and never returns an empty string.

// symptomRule pairs a symptom with the aliases that select it. The slice
// order is the priority order; the first rule with a matching alias wins.
// Aliases include the native-script equivalents so a Hindi or Punjabi
// message selects the right symptom regardless of the reply language.
type symptomRule struct {
	Symptom string
	Aliases []string
}

var symptomRules = []symptomRule{
	{"fever", []string{"fever", "बुखार", "ਬੁਖਾਰ", "bukhar"}},
	{"headache", []string{"headache", "सिरदर्द", "सिर दर्द", "ਸਿਰਦਰਦ", "ਸਿਰ ਦਰਦ"}},
	{"cough", []string{"cough", "खांसी", "ਖੰਘ", "khansi"}},
	{"stomach", []string{"stomach", "पेट", "ਪੇਟ", "pet dard"}},
	{"chest", []string{"chest", "छाती", "सीने", "ਛਾਤੀ"}},
	{"pain", []string{"pain", "दर्द", "ਦਰਦ", "dard"}},
}

var advice = map[language.Language]map[string]string{
	language.English: {
		"fever":    "For fever: Rest, drink water, and contact a doctor if temperature is above 102°F.",
		"headache": "For headache: Rest in a quiet, dark room, drink water, and see a doctor if it is severe or lasts more than two days.",
		"cough":    "For cough: Drink warm fluids, avoid cold drinks, and consult a doctor if it lasts more than a week.",
		"stomach":  "For stomach pain: Eat light food, stay hydrated, and see a doctor if the pain is severe or persistent.",
		"chest":    "For chest discomfort: Sit down and rest immediately. If the pain is severe or spreads to your arm or jaw, seek emergency help now.",
		"pain":     "For pain: Rest the affected area and consult a doctor if it does not improve within a day or two.",
	},
	language.Hindi: {
		"fever":    "बुखार के लिए: आराम करें, पानी पिएं, और यदि तापमान 102°F से ऊपर हो तो डॉक्टर से संपर्क करें।",
		"headache": "सिरदर्द के लिए: शांत, अंधेरे कमरे में आराम करें, पानी पिएं, और यदि दर्द तेज़ हो या दो दिन से अधिक रहे तो डॉक्टर को दिखाएँ।",
		"cough":    "खांसी के लिए: गर्म तरल पदार्थ पिएं, ठंडे पेय से बचें, और एक सप्ताह से अधिक रहने पर डॉक्टर से सलाह लें।",
		"stomach":  "पेट दर्द के लिए: हल्का भोजन करें, पानी पीते रहें, और दर्द तेज़ या लगातार हो तो डॉक्टर को दिखाएँ।",
		"chest":    "छाती में तकलीफ के लिए: तुरंत बैठकर आराम करें। दर्द तेज़ हो या बांह या जबड़े में फैले तो तुरंत आपातकालीन मदद लें।",
		"pain":     "दर्द के लिए: प्रभावित हिस्से को आराम दें और एक-दो दिन में सुधार न हो तो डॉक्टर से सलाह लें।",
	},
	language.Punjabi: {
		"fever":    "ਬੁਖਾਰ ਲਈ: ਆਰਾਮ ਕਰੋ, ਪਾਣੀ ਪੀਓ, ਅਤੇ ਜੇ ਤਾਪਮਾਨ 102°F ਤੋਂ ਵੱਧ ਹੋਵੇ ਤਾਂ ਡਾਕਟਰ ਨਾਲ ਸੰਪਰਕ ਕਰੋ।",
		"headache": "ਸਿਰਦਰਦ ਲਈ: ਸ਼ਾਂਤ, ਹਨੇਰੇ ਕਮਰੇ ਵਿੱਚ ਆਰਾਮ ਕਰੋ, ਪਾਣੀ ਪੀਓ, ਅਤੇ ਜੇ ਦਰਦ ਤੇਜ਼ ਹੋਵੇ ਜਾਂ ਦੋ ਦਿਨਾਂ ਤੋਂ ਵੱਧ ਰਹੇ ਤਾਂ ਡਾਕਟਰ ਨੂੰ ਮਿਲੋ।",
		"cough":    "ਖੰਘ ਲਈ: ਗਰਮ ਤਰਲ ਪੀਓ, ਠੰਢੇ ਪੀਣ ਤੋਂ ਬਚੋ, ਅਤੇ ਹਫ਼ਤੇ ਤੋਂ ਵੱਧ ਰਹਿਣ 'ਤੇ ਡਾਕਟਰ ਦੀ ਸਲਾਹ ਲਓ।",
		"stomach":  "ਪੇਟ ਦਰਦ ਲਈ: ਹਲਕਾ ਖਾਣਾ ਖਾਓ, ਪਾਣੀ ਪੀਂਦੇ ਰਹੋ, ਅਤੇ ਦਰਦ ਤੇਜ਼ ਜਾਂ ਲਗਾਤਾਰ ਹੋਵੇ ਤਾਂ ਡਾਕਟਰ ਨੂੰ ਮਿਲੋ।",
		"chest":    "ਛਾਤੀ ਦੀ ਤਕਲੀਫ਼ ਲਈ: ਤੁਰੰਤ ਬੈਠ ਕੇ ਆਰਾਮ ਕਰੋ। ਦਰਦ ਤੇਜ਼ ਹੋਵੇ ਜਾਂ ਬਾਂਹ ਜਾਂ ਜਬਾੜੇ ਵੱਲ ਫੈਲੇ ਤਾਂ ਤੁਰੰਤ ਐਮਰਜੈਂਸੀ ਮਦਦ ਲਓ।",
		"pain":     "ਦਰਦ ਲਈ: ਪ੍ਰਭਾਵਿਤ ਹਿੱਸੇ ਨੂੰ ਆਰਾਮ ਦਿਓ ਅਤੇ ਇੱਕ-ਦੋ ਦਿਨਾਂ ਵਿੱਚ ਸੁਧਾਰ ਨਾ ਹੋਵੇ ਤਾਂ ਡਾਕਟਰ ਦੀ ਸਲਾਹ ਲਓ।",
	},
}

var busy = map[language.Language]string{
	language.English: "I'm currently busy. Please try again in a few minutes, or contact a doctor directly.",
	language.Hindi:   "मैं अभी व्यस्त हूँ। कृपया कुछ मिनट बाद फिर प्रयास करें, या सीधे डॉक्टर से संपर्क करें।",
	language.Punjabi: "ਮੈਂ ਇਸ ਵੇਲੇ ਰੁੱਝਿਆ ਹੋਇਆ ਹਾਂ। ਕਿਰਪਾ ਕਰਕੇ ਕੁਝ ਮਿੰਟਾਂ ਬਾਅਦ ਫਿਰ ਕੋਸ਼ਿਸ਼ ਕਰੋ, ਜਾਂ ਸਿੱਧਾ ਡਾਕਟਰ ਨਾਲ ਸੰਪਰਕ ਕਰੋ।",
}

// Advice scans the user message for symptom keywords in priority order and
// returns the canned advice string in the requested language. Messages that
// match no symptom get the generic busy string.
func Advice(message string, lang language.Language) string {
	table, ok := advice[lang]
	if !ok {
		lang = language.English
		table = advice[language.English]
	}

	lowered := strings.ToLower(message)
	for _, rule := range symptomRules {
		for _, alias := range rule.Aliases {
			if strings.Contains(lowered, alias) {
				return table[rule.Symptom]
			}
		}
	}
	return busy[lang]
}
