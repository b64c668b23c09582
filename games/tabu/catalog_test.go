package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Languages(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []string{"en", "tr"}, c.Languages())
}

func TestCatalog_Match(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"tr", "tr"},
		{"tr-TR", "tr"},
		{"tr-TR,tr;q=0.9,en;q=0.8", "tr"},
		{"de", "en"},
		{"", "en"},
		{"not a tag!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.in))
		})
	}
}

func TestCatalog_Supports(t *testing.T) {
	c := DefaultCatalog()
	assert.True(t, c.Supports("tr-TR"))
	assert.True(t, c.Supports("en-US"))
	assert.False(t, c.Supports("ja"))
	assert.False(t, c.Supports(""))
}

func TestCatalog_LookupFiltersAgeGroup(t *testing.T) {
	c := DefaultCatalog()

	for _, lang := range c.Languages() {
		for _, g := range []AgeGroup{AgeChild, AgeTeen, AgeAdult} {
			cards := c.Lookup(lang, g)
			require.NotEmpty(t, cards, "%s/%s", lang, g)
			for _, card := range cards {
				assert.True(t, card.For(g))
			}
		}
	}
	assert.Less(t, len(c.Lookup("en", AgeChild)), len(c.Deck("en")))
}

func TestNewCatalog_RejectsBadDecks(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.Error(t, err)

	dup := testPool(2)
	dup[1].ID = dup[0].ID
	_, err = NewCatalog(map[string][]WordCard{"en": dup})
	assert.Error(t, err)

	short := testPool(1)
	short[0].Forbidden = short[0].Forbidden[:5]
	_, err = NewCatalog(map[string][]WordCard{"en": short})
	assert.Error(t, err)

	_, err = NewCatalog(map[string][]WordCard{"???": testPool(1)})
	assert.Error(t, err)
}

func TestNewCatalog_FallbackIsEnglish(t *testing.T) {
	c, err := NewCatalog(map[string][]WordCard{"tr": testPool(1), "en": testPool(2), "de": testPool(3)})
	require.NoError(t, err)
	assert.Equal(t, "en", c.Languages()[0])
	assert.Equal(t, "en", c.Match("ja"))
}
