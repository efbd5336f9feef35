package domain

import (
	"sort"

	"github.com/pkg/errors"
)

// Language is a supported interpretation language code.
type Language string

const (
	Amharic    Language = "amharic"
	Farsi      Language = "farsi"
	Mandarin   Language = "mandarin"
	Portuguese Language = "portuguese"
	Russian    Language = "russian"
	Somali     Language = "somali"
	Spanish    Language = "spanish"
	Tigrinya   Language = "tigrinya"
	Vietnamese Language = "vietnamese"
)

// SupportedLanguages lists every language the directory understands,
// alphabetically.
var SupportedLanguages = []Language{
	Amharic,
	Farsi,
	Mandarin,
	Portuguese,
	Russian,
	Somali,
	Spanish,
	Tigrinya,
	Vietnamese,
}

var supportedSet = func() map[Language]struct{} {
	m := make(map[Language]struct{}, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		m[l] = struct{}{}
	}
	return m
}()

// ParseLanguages converts raw codes into a deduplicated, alphabetically
// ordered language set. Unknown codes are rejected.
func ParseLanguages(codes []string) ([]Language, error) {
	seen := make(map[Language]struct{}, len(codes))
	out := make([]Language, 0, len(codes))
	for _, code := range codes {
		lang := Language(code)
		if _, ok := supportedSet[lang]; !ok {
			return nil, errors.Errorf("unsupported language: %s", code)
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// IntersectLanguages returns the languages present in both sets, keeping
// the order of the first set.
func IntersectLanguages(a, b []Language) []Language {
	inB := make(map[Language]struct{}, len(b))
	for _, l := range b {
		inB[l] = struct{}{}
	}
	var out []Language
	for _, l := range a {
		if _, ok := inB[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// LanguageStrings flattens a language set back to raw codes.
func LanguageStrings(langs []Language) []string {
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = string(l)
	}
	return out
}
