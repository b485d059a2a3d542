package config

import "slices"

const (
	LangEN = "en"
	LangES = "es"
)

func SupportedLanguages() []string {
	return []string{LangEN, LangES}
}

func IsSupportedLanguage(lang string) bool {
	return slices.Contains(SupportedLanguages(), lang)
}
