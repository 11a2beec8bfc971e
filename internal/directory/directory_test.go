package directory

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
)

func loadIndexFixture(t *testing.T) []models.LineSummary {
	t.Helper()
	raw, err := os.ReadFile(models.GetFixturePath(t, "information/index.json"))
	require.NoError(t, err)

	var lines []models.LineSummary
	require.NoError(t, json.Unmarshal(raw, &lines))
	return lines
}

func codes(lines []models.LineSummary) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.LineCode
	}
	return out
}

func TestParseGroupBy(t *testing.T) {
	assert.Equal(t, ByService, ParseGroupBy("service"))
	assert.Equal(t, ByService, ParseGroupBy(" Service "))
	assert.Equal(t, ByCompany, ParseGroupBy("company"))
	assert.Equal(t, ByCompany, ParseGroupBy(""))
	assert.Equal(t, ByCompany, ParseGroupBy("depot"))
	assert.Equal(t, "service", ByService.String())
}

func TestFilter(t *testing.T) {
	lines := loadIndexFixture(t)

	testCases := []struct {
		name string
		term string
		lang multilingual.Language
		want []string
	}{
		{name: "empty term keeps everything", term: "", lang: multilingual.English, want: []string{"K7", "L1", "M2"}},
		{name: "matches line names", term: "line", lang: multilingual.English, want: []string{"K7", "L1", "M2"}},
		{name: "ignores case", term: "MAGLEV", lang: multilingual.English, want: []string{"M2"}},
		{name: "matches destinations", term: "fujin", lang: multilingual.English, want: []string{"L1"}},
		{name: "uses the reader language", term: "浦东", lang: multilingual.SimplifiedChinese, want: []string{"M2"}},
		{name: "falls back when the preferred text is empty", term: "三崎口", lang: multilingual.SimplifiedChinese, want: []string{"K7"}},
		{name: "other languages are not searched", term: "fujin", lang: multilingual.SimplifiedChinese, want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, codes(Filter(lines, tc.term, tc.lang)))
		})
	}
}

func TestLetter(t *testing.T) {
	assert.Equal(t, "S", Letter("sm"))
	assert.Equal(t, "K", Letter("KK"))
	assert.Equal(t, "?", Letter(""))
	assert.Equal(t, "快", Letter("快速|快速|Rapid||"))
	assert.Equal(t, "É", Letter("éxpress"))
}

func TestGroupLines(t *testing.T) {
	lines := loadIndexFixture(t)

	t.Run("by company", func(t *testing.T) {
		groups := GroupLines(lines, ByCompany, multilingual.English)
		require.Len(t, groups, 2)

		assert.Equal(t, "K", groups[0].Letter)
		assert.Equal(t, "S", groups[1].Letter)
		require.Len(t, groups[1].Lines, 2)
		assert.Equal(t, "L1", groups[1].Lines[0].LineCode)
		assert.Equal(t, "M2", groups[1].Lines[1].LineCode)
	})

	t.Run("by service", func(t *testing.T) {
		groups := GroupLines(lines, ByService, multilingual.English)
		letters := make([]string, len(groups))
		for i, g := range groups {
			letters[i] = g.Letter
		}
		assert.Equal(t, []string{"A", "E", "L"}, letters)
	})

	t.Run("missing key", func(t *testing.T) {
		groups := GroupLines([]models.LineSummary{{LineCode: "X1"}}, ByCompany, multilingual.English)
		require.Len(t, groups, 1)
		assert.Equal(t, "?", groups[0].Letter)
	})

	t.Run("lines are resolved for the reader", func(t *testing.T) {
		groups := GroupLines(lines, ByCompany, multilingual.Japanese)
		require.NotEmpty(t, groups)
		assert.Equal(t, "京急本線", groups[0].Lines[0].LineName.Primary)
		assert.Equal(t, "Keikyu Main Line", groups[0].Lines[0].LineName.Secondary)
	})

	t.Run("no lines", func(t *testing.T) {
		groups := GroupLines(nil, ByCompany, multilingual.English)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}

func TestBuild(t *testing.T) {
	lines := loadIndexFixture(t)

	view := Build(lines, Options{Query: "maglev", GroupBy: ByService, Language: multilingual.English})
	assert.Equal(t, "en", view.Language)
	assert.Equal(t, "service", view.GroupBy)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 1, view.Matched)
	assert.False(t, view.Empty())
	require.Len(t, view.Groups, 1)
	assert.Equal(t, "E", view.Groups[0].Letter)

	empty := Build(lines, Options{Query: "nowhere", Language: multilingual.English})
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.Groups)
}
