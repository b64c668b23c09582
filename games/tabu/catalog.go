package tabu

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// Catalog is a read-only set of decks keyed by display language.
type Catalog struct {
	tags    []language.Tag
	decks   map[language.Tag][]WordCard
	matcher language.Matcher
}

// NewCatalog builds a catalog from decks keyed by BCP 47 tags. The first
// tag in sorted order becomes the fallback unless "en" is present.
func NewCatalog(decks map[string][]WordCard) (*Catalog, error) {
	if len(decks) == 0 {
		return nil, fmt.Errorf("catalog needs at least one deck")
	}

	keys := make([]string, 0, len(decks))
	for k := range decks {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if i := slices.Index(keys, "en"); i > 0 {
		keys[0], keys[i] = keys[i], keys[0]
	}

	c := &Catalog{decks: make(map[language.Tag][]WordCard, len(decks))}
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("parse deck language %q: %w", k, err)
		}
		if err := checkDeck(decks[k]); err != nil {
			return nil, fmt.Errorf("deck %q: %w", k, err)
		}
		c.tags = append(c.tags, tag)
		c.decks[tag] = decks[k]
	}
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// DefaultCatalog returns the built-in English and Turkish decks.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(map[string][]WordCard{
		"en": deckEN,
		"tr": deckTR,
	})
	if err != nil {
		panic(err)
	}
	return c
}

func checkDeck(cards []WordCard) error {
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if c.ID == "" || c.Word == "" {
			return fmt.Errorf("card %q has no id or word", c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Forbidden) < ForbiddenCount[Hard] {
			return fmt.Errorf("card %q has %d forbidden words, need %d", c.ID, len(c.Forbidden), ForbiddenCount[Hard])
		}
		if len(c.AgeGroups) == 0 {
			return fmt.Errorf("card %q has no age group", c.ID)
		}
	}
	return nil
}

// Languages lists the catalog's deck languages, fallback first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Match resolves a requested language (e.g. "tr-TR", "en-GB,en;q=0.8") to
// the closest deck language.
func (c *Catalog) Match(lang string) string {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return c.tags[0].String()
	}
	_, i, _ := c.matcher.Match(tags...)
	return c.tags[i].String()
}

// Supports reports whether lang resolves to a deck with a confidence other
// than No.
func (c *Catalog) Supports(lang string) bool {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return false
	}
	_, _, conf := c.matcher.Match(tags...)
	return conf != language.No
}

// Lookup returns the deck for lang filtered to the age group.
func (c *Catalog) Lookup(lang string, g AgeGroup) []WordCard {
	out := make([]WordCard, 0)
	for _, card := range c.Deck(lang) {
		if card.For(g) {
			out = append(out, card)
		}
	}
	return out
}

// Deck returns the full deck for lang. The slice must not be modified.
func (c *Catalog) Deck(lang string) []WordCard {
	tag := language.MustParse(c.Match(lang))
	return c.decks[tag]
}
