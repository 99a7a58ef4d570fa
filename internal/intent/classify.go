package intent

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Classify maps free-form input to a control intent plus a response
// language. It never fails; the worst case is Unknown with the detected
// language attached.
//
// Evaluation order is load-bearing: intents in declaration order, the
// detected language's keyword list first, then every other language's
// list for the same intent. A fallback hit reports the keyword's source
// language so a Latin-script Hindi word typed in an English sentence
// still gets a Hindi response.
func Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Intent: Unknown, Lang: LangEnglish}
	}

	lower := strings.ToLower(text)
	detected := DetectLanguage(text)

	for _, in := range intentOrder {
		if containsAny(lower, keywords[in][detected]) {
			return Result{Intent: in, Lang: detected}
		}
		for _, lang := range langOrder {
			if lang == detected {
				continue
			}
			if containsAny(lower, keywords[in][lang]) {
				return Result{Intent: in, Lang: lang}
			}
		}
	}

	if in, ok := fuzzyEnglish(lower); ok {
		return Result{Intent: in, Lang: detected}
	}

	return Result{Intent: Unknown, Lang: detected}
}

// DetectLanguage is a single-pass script scan: any Devanagari rune wins
// over Telugu, which wins over the English default.
func DetectLanguage(text string) Language {
	telugu := false
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			return LangHindi
		case r >= 0x0C00 && r <= 0x0C7F:
			telugu = true
		}
	}
	if telugu {
		return LangTelugu
	}
	return LangEnglish
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// fuzzyEnglish is the misspelling net: once exact containment misses
// everywhere, each input token is compared against the English keyword
// lists within a length-scaled edit distance ("watr" still waters the
// field). Short keywords are excluded; one edit away from "wet" or "cut"
// is most of the dictionary. Token and keyword must also share their
// first letter: typos rarely hit the leading character, and without the
// guard ordinary words sit one edit from a keyword ("field" vs "yield").
func fuzzyEnglish(lower string) (Intent, bool) {
	tokens := strings.Fields(normalise(lower))
	for _, in := range intentOrder {
		for _, kw := range keywords[in][LangEnglish] {
			if len(kw) < 5 {
				continue
			}
			for _, token := range tokens {
				if len(token) < 3 || token[0] != kw[0] {
					continue
				}
				if levenshtein.ComputeDistance(token, kw) <= levenshteinLimit(len(kw)) {
					return in, true
				}
			}
		}
	}
	return Unknown, false
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// normalise strips everything but lowercase ASCII letters, digits and
// single spaces. Only the English fuzzy pass consumes it.
func normalise(raw string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
