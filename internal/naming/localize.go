package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Localizer resolves sigil-prefixed localization keys.
type Localizer interface {
	Localize(key string) (string, bool)
}

// NormalizeKey strips the sigil, lowercases and trims the key.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), LocSigil)))
}

// IsLocKey reports whether raw is a sigil-prefixed localization key.
func IsLocKey(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), LocSigil)
}

// IsEmoteKey reports whether raw is a localization key naming an emote.
func IsEmoteKey(raw string) bool {
	return IsLocKey(raw) && strings.HasPrefix(NormalizeKey(raw), EmoteKeyPrefix)
}

// EmoteKey is the emote catalog key of a raw name: the normalized key
// without its display-name suffix.
func EmoteKey(raw string) string {
	return strings.TrimSuffix(NormalizeKey(raw), NameKeySuffix)
}

// DeriveLabel makes a readable label out of a localization key:
// "@ui_emote_happy_dance_name" becomes "Happy Dance".
func DeriveLabel(raw string) string {
	k := NormalizeKey(raw)
	for _, p := range labelPrefixes {
		if strings.HasPrefix(k, p) {
			k = strings.TrimPrefix(k, p)
			break
		}
	}
	for _, s := range labelSuffixes {
		if strings.HasSuffix(k, s) {
			k = strings.TrimSuffix(k, s)
			break
		}
	}
	words := strings.FieldsFunc(k, func(r rune) bool { return r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Localize resolves a raw name. Non-key names are returned as is. A key is
// looked up as is, then without its display-name suffix; a missing key
// yields a derived label. derived reports that no table entry was found.
func Localize(loc Localizer, raw string) (name string, derived bool) {
	if !IsLocKey(raw) {
		return raw, false
	}
	k := NormalizeKey(raw)
	if k == "" {
		return raw, false
	}
	if v, ok := loc.Localize(k); ok && v != "" {
		return v, false
	}
	if trimmed := strings.TrimSuffix(k, NameKeySuffix); trimmed != k {
		if v, ok := loc.Localize(trimmed); ok && v != "" {
			return v, false
		}
	}
	label := DeriveLabel(raw)
	if label == "" {
		return raw, false
	}
	return label, true
}
