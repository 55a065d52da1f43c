package translate

// langNames maps the language codes the UI offers to the names the LLM
// prompts use. Codes outside the table are passed through verbatim.
var langNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ar": "Arabic",
	"hi": "Hindi",
}

func langName(code string) string {
	if name, ok := langNames[code]; ok {
		return name
	}
	return code
}
