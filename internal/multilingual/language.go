package multilingual

import (
	"strings"

	"golang.org/x/text/language"
)

// Language identifies one of the five variants a multilingual field can carry.
type Language int

const (
	SimplifiedChinese Language = iota
	TraditionalChinese
	English
	Japanese
	Korean
)

// DefaultLanguage is used when no preference has been recorded.
const DefaultLanguage = SimplifiedChinese

// Languages lists every supported language in storage order.
var Languages = []Language{SimplifiedChinese, TraditionalChinese, English, Japanese, Korean}

// FallbackOrder is consulted top to bottom whenever the preferred variant is empty.
var FallbackOrder = []Language{SimplifiedChinese, TraditionalChinese, Japanese, Korean, English}

type languageInfo struct {
	code     string
	position int
	tag      language.Tag
	name     string
}

// Segment positions are the on-disk order of a delimited field; they differ
// from FallbackOrder (English is stored third but consulted last).
var languageTable = map[Language]languageInfo{
	SimplifiedChinese:  {code: "zh-hans", position: 0, tag: language.SimplifiedChinese, name: "简体中文"},
	TraditionalChinese: {code: "zh-hant", position: 1, tag: language.TraditionalChinese, name: "繁體中文"},
	English:            {code: "en", position: 2, tag: language.English, name: "English"},
	Japanese:           {code: "ja", position: 3, tag: language.Japanese, name: "日本語"},
	Korean:             {code: "ko", position: 4, tag: language.Korean, name: "한국어"},
}

var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.English,
	language.Japanese,
	language.Korean,
})

// Code returns the lowercase code used in URLs, cookies and file names.
func (l Language) Code() string {
	if info, ok := languageTable[l]; ok {
		return info.code
	}
	return ""
}

func (l Language) String() string {
	return l.Code()
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if info, ok := languageTable[l]; ok {
		return info.tag
	}
	return language.Und
}

// DisplayName is the language's own name for itself.
func (l Language) DisplayName() string {
	return languageTable[l].name
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageTable[l]
	return ok
}

func (l Language) position() int {
	return languageTable[l].position
}

// ParseLanguage maps a language code onto a supported Language. The five
// canonical codes are accepted case-insensitively; other BCP 47 tags such as
// "zh-TW" or "en-GB" are matched to the closest supported language.
func ParseLanguage(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLanguage, false
	}

	lower := strings.ToLower(code)
	for _, l := range Languages {
		if languageTable[l].code == lower {
			return l, true
		}
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage, false
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage, false
	}
	return Languages[index], true
}
