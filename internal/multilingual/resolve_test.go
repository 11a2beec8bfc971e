package multilingual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	t.Run("maps segments by storage position", func(t *testing.T) {
		texts := ParseField("东京|東京|Tokyo|東京|도쿄").Map()

		assert.Equal(t, map[Language]string{
			SimplifiedChinese:  "东京",
			TraditionalChinese: "東京",
			English:            "Tokyo",
			Japanese:           "東京",
			Korean:             "도쿄",
		}, texts)
	})

	tests := []struct {
		name  string
		value string
	}{
		{"empty value", ""},
		{"single segment", "上海"},
		{"two segments", "上海|上海"},
		{"four segments", "a|b|c|d"},
		{"only delimiters", "||"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" always yields five keys", func(t *testing.T) {
			texts := ParseField(tt.value).Map()
			assert.Len(t, texts, 5)

			segments := 0
			if tt.value != "" {
				segments = strings.Count(tt.value, Delimiter) + 1
			}
			for _, lang := range Languages {
				if lang.position() >= segments {
					assert.Empty(t, texts[lang], "unspecified position %s should be empty", lang)
				}
			}
		})
	}

	t.Run("ignores segments past the fifth", func(t *testing.T) {
		field := ParseField("a|b|c|d|e|f|g")
		assert.Equal(t, "e", field.Get(Korean))
	})

	t.Run("unsupported language reads as empty", func(t *testing.T) {
		assert.Empty(t, ParseField("a|b|c|d|e").Get(Language(42)))
	})
}

func TestFieldFormat(t *testing.T) {
	field := NewField(map[Language]string{
		SimplifiedChinese: "人民广场",
		English:           "People's Square",
	})

	assert.Equal(t, "人民广场||People's Square", field.Format())
	assert.Equal(t, field, ParseField(field.Format()))
	assert.Equal(t, "", Field{}.Format())
	assert.True(t, Field{}.IsEmpty())
	assert.False(t, field.IsEmpty())
}

func TestResolveBilingual(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		preferred Language
		want      ResolvedText
	}{
		{
			name:      "preferred variant present",
			value:     "东京|東京|Tokyo|東京|도쿄",
			preferred: Korean,
			want:      ResolvedText{Primary: "도쿄", Secondary: "Tokyo"},
		},
		{
			name:      "simplified missing falls back to traditional",
			value:     "|环球港|Global Harbor||",
			preferred: SimplifiedChinese,
			want:      ResolvedText{Primary: "环球港", Secondary: "Global Harbor"},
		},
		{
			name:      "fallback skips English for the primary slot",
			value:     "||Central||",
			preferred: Japanese,
			want:      ResolvedText{Primary: "", Secondary: "Central"},
		},
		{
			name:      "fallback reaches Korean before giving up",
			value:     "||Central||센트럴",
			preferred: Japanese,
			want:      ResolvedText{Primary: "센트럴", Secondary: "Central"},
		},
		{
			name:      "english missing uses primary as secondary",
			value:     "中山公园|中山公園|||",
			preferred: TraditionalChinese,
			want:      ResolvedText{Primary: "中山公園", Secondary: "中山公園"},
		},
		{
			name:      "english reader sees localized primary",
			value:     "东京|東京|Tokyo|東京|도쿄",
			preferred: English,
			want:      ResolvedText{Primary: "东京", Secondary: "Tokyo"},
		},
		{
			name:      "english reader with only english text",
			value:     "||Tokyo||",
			preferred: English,
			want:      ResolvedText{Primary: "", Secondary: "Tokyo"},
		},
		{
			name:      "english reader without english text",
			value:     "||||도쿄",
			preferred: English,
			want:      ResolvedText{Primary: "도쿄", Secondary: "도쿄"},
		},
		{
			name:      "empty value",
			value:     "",
			preferred: SimplifiedChinese,
			want:      ResolvedText{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBilingual(tt.value, tt.preferred))
		})
	}
}

func TestResolveBilingualProperties(t *testing.T) {
	values := []string{
		"东京|東京|Tokyo|東京|도쿄",
		"|环球港|Global Harbor||",
		"||Tokyo||",
		"上海",
		"",
		"|||東京|",
		"a|b||d|e",
	}

	for _, value := range values {
		field := ParseField(value)

		english := ResolveBilingual(value, English)
		if field.Get(English) != "" {
			assert.Equal(t, field.Get(English), english.Secondary, "value %q", value)
		} else {
			assert.Equal(t, english.Primary, english.Secondary, "value %q", value)
		}

		for _, lang := range Languages {
			if lang == English {
				continue
			}
			resolved := ResolveBilingual(value, lang)
			if text := field.Get(lang); text != "" {
				assert.Equal(t, text, resolved.Primary, "value %q lang %s", value, lang)
			}
			if resolved.Secondary == "" {
				assert.Empty(t, field.Get(English))
				assert.Empty(t, resolved.Primary)
			}
		}
	}
}

func TestResolveSingle(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		preferred Language
		want      string
	}{
		{"preferred present", "东京|東京|Tokyo|東京|도쿄", Japanese, "東京"},
		{"preferred english present", "东京|東京|Tokyo|東京|도쿄", English, "Tokyo"},
		{"falls back to simplified first", "东京|東京|Tokyo||", Korean, "东京"},
		{"japanese before english", "||Tokyo|東京|", Korean, "東京"},
		{"english last", "||Tokyo||", Korean, "Tokyo"},
		{"nothing at all", "", Japanese, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSingle(tt.value, tt.preferred))
		})
	}

	t.Run("never skips a higher-priority variant", func(t *testing.T) {
		value := "|繁|Eng|日|"
		got := ResolveSingle(value, Korean)
		field := ParseField(value)
		for _, lang := range FallbackOrder {
			if text := field.Get(lang); text != "" {
				assert.Equal(t, text, got)
				break
			}
		}
	})
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code   string
		want   Language
		wantOK bool
	}{
		{"zh-hans", SimplifiedChinese, true},
		{"ZH-HANT", TraditionalChinese, true},
		{"en", English, true},
		{"ja", Japanese, true},
		{"ko", Korean, true},
		{"en-GB", English, true},
		{"ja-JP", Japanese, true},
		{"fr", DefaultLanguage, false},
		{"", DefaultLanguage, false},
		{"not a tag!", DefaultLanguage, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := ParseLanguage(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageMetadata(t *testing.T) {
	for _, lang := range Languages {
		parsed, ok := ParseLanguage(lang.Code())
		assert.True(t, ok)
		assert.Equal(t, lang, parsed)
		assert.NotEmpty(t, lang.DisplayName())
	}

	assert.Equal(t, "", Language(-1).Code())
	assert.False(t, Language(9).Valid())
	assert.Equal(t, "zh-Hant", TraditionalChinese.Tag().String())
}
