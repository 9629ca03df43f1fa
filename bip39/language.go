package bip39

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language identifies one of the ten standard BIP39 word lists.
type Language int

const (
	English Language = iota
	Japanese
	Korean
	Spanish
	SimplifiedChinese
	TraditionalChinese
	French
	Italian
	Czech
	Portuguese
)

// Languages lists every Language in declaration order.
var Languages = []Language{
	English,
	Japanese,
	Korean,
	Spanish,
	SimplifiedChinese,
	TraditionalChinese,
	French,
	Italian,
	Czech,
	Portuguese,
}

var languageInfo = [...]struct {
	name string
	code string
	tag  language.Tag
}{
	English:            {"english", "en", language.English},
	Japanese:           {"japanese", "ja", language.Japanese},
	Korean:             {"korean", "ko", language.Korean},
	Spanish:            {"spanish", "es", language.Spanish},
	SimplifiedChinese:  {"chinese-simplified", "zh-cn", language.SimplifiedChinese},
	TraditionalChinese: {"chinese-traditional", "zh-tw", language.TraditionalChinese},
	French:             {"french", "fr", language.French},
	Italian:            {"italian", "it", language.Italian},
	Czech:              {"czech", "cs", language.Czech},
	Portuguese:         {"portuguese", "pt", language.Portuguese},
}

func (l Language) valid() bool {
	return l >= 0 && int(l) < len(languageInfo)
}

func (l Language) String() string {
	if !l.valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageInfo[l].name
}

// Code returns the short language code used by the crypto-bip39 UR type.
func (l Language) Code() string {
	if !l.valid() {
		return ""
	}
	return languageInfo[l].code
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if !l.valid() {
		return language.Und
	}
	return languageInfo[l].tag
}

// Separator returns the string placed between the words of a
// canonical phrase: U+3000 IDEOGRAPHIC SPACE for Japanese and U+0020
// SPACE otherwise.
func (l Language) Separator() string {
	if l == Japanese {
		return "\u3000"
	}
	return " "
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(Languages))
	for i, l := range Languages {
		tags[i] = l.Tag()
	}
	return language.NewMatcher(tags)
}()

// ParseLanguage resolves a language from its canonical name
// ("chinese-simplified"), its English display name ("Simplified
// Chinese"), a short code ("zh-cn") or a BCP 47 tag ("ja-JP", "pt-BR").
func ParseLanguage(s string) (Language, error) {
	key := sanitizeLang(s)
	if key == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnsupportedLanguage)
	}
	names := display.English.Languages()
	for _, l := range Languages {
		info := languageInfo[l]
		if key == sanitizeLang(info.name) || key == sanitizeLang(info.code) ||
			key == sanitizeLang(names.Name(info.tag)) {
			return l, nil
		}
	}
	// "simplified-chinese" and friends.
	if base, variant, ok := strings.Cut(key, "chinese"); ok {
		switch base + variant {
		case "simplified":
			return SimplifiedChinese, nil
		case "traditional":
			return TraditionalChinese, nil
		}
	}
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return Languages[i], nil
}

func sanitizeLang(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}
