package i18n

import (
	"sort"
	"strconv"
	"strings"
)

// Locales is the default supported locale set.
var Locales = []string{
	"en",
	"es",
	"fr",
	"de",
	"pt",
	"hi",
	"ar",
	"ja",
	"zh-Hans",
	"ko",
	"ru",
	"id",
}

// DefaultLocale is used when a viewer has no locale preference.
const DefaultLocale = "en"

// Names maps locale tags to their native display names.
var Names = map[string]string{
	"en":      "English",
	"es":      "Español",
	"fr":      "Français",
	"de":      "Deutsch",
	"pt":      "Português",
	"hi":      "हिन्दी",
	"ar":      "العربية",
	"ja":      "日本語",
	"zh-Hans": "简体中文",
	"ko":      "한국어",
	"ru":      "Русский",
	"id":      "Bahasa Indonesia",
}

var rtl = map[string]bool{
	"ar": true,
}

// IsRTL reports whether the locale is written right-to-left.
func IsRTL(tag string) bool {
	return rtl[tag]
}

// Name returns the display name for a locale tag, falling back to the
// tag itself for unknown locales.
func Name(tag string) string {
	if name, ok := Names[tag]; ok {
		return name
	}
	return tag
}

// Contains reports whether tag is a member of the locale set.
func Contains(locales []string, tag string) bool {
	for _, l := range locales {
		if l == tag {
			return true
		}
	}
	return false
}

// MatchAcceptLanguage returns the supported locale best matching an
// Accept-Language header value, or "" when nothing matches. Matching is
// by full tag first, then by primary subtag, so "zh-CN" resolves to
// "zh-Hans" and "pt-BR" to "pt".
func MatchAcceptLanguage(header string) string {
	type candidate struct {
		tag string
		q   float64
	}

	var candidates []candidate
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(strings.TrimSpace(part), ";")
		tag := strings.TrimSpace(fields[0])
		if tag == "" || tag == "*" {
			continue
		}
		q := 1.0
		for _, field := range fields[1:] {
			field = strings.TrimSpace(field)
			if strings.HasPrefix(field, "q=") {
				if parsed, err := strconv.ParseFloat(field[2:], 64); err == nil {
					q = parsed
				}
			}
		}
		candidates = append(candidates, candidate{tag: tag, q: q})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].q > candidates[j].q
	})

	for _, cand := range candidates {
		if Contains(Locales, cand.tag) {
			return cand.tag
		}
		primary := cand.tag
		if i := strings.IndexByte(primary, '-'); i > 0 {
			primary = primary[:i]
		}
		if Contains(Locales, primary) {
			return primary
		}
		// Chinese variants all map onto the single simplified tag.
		if strings.EqualFold(primary, "zh") {
			return "zh-Hans"
		}
	}
	return ""
}

// Targets returns every locale in the set except source.
func Targets(locales []string, source string) []string {
	targets := make([]string, 0, len(locales))
	for _, l := range locales {
		if l != source {
			targets = append(targets, l)
		}
	}
	return targets
}
