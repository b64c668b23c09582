package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeal_FiltersByAgeGroup(t *testing.T) {
	pool := append(testPool(3, AgeChild), testPool(2, AgeAdult)...)
	pool[3].ID, pool[4].ID = "adult-1", "adult-2"

	r := NewRand(7)
	for range 20 {
		c, ok := Deal(pool, r, AgeAdult, nil, Easy)
		require.True(t, ok)
		assert.Contains(t, []string{"adult-1", "adult-2"}, c.ID)
	}

	_, ok := Deal(pool, r, AgeTeen, nil, Easy)
	assert.False(t, ok)
}

func TestDeal_ExhaustsAfterEveryCardDealt(t *testing.T) {
	pool := append(testPool(3, AgeAdult), testPool(4, AgeChild)...)
	for i := 3; i < len(pool); i++ {
		pool[i].ID = "child-" + pool[i].ID
	}

	r := NewRand(42)
	exclude := make(map[string]bool)
	for range 3 {
		c, ok := Deal(pool, r, AgeAdult, exclude, Medium)
		require.True(t, ok)
		assert.False(t, exclude[c.ID], "card %s dealt twice", c.ID)
		exclude[c.ID] = true
	}

	_, ok := Deal(pool, r, AgeAdult, exclude, Medium)
	assert.False(t, ok)
}

func TestDeal_TrimsForbiddenPrefix(t *testing.T) {
	pool := testPool(1)

	for d, n := range map[Difficulty]int{Easy: 4, Medium: 5, Hard: 6} {
		c, ok := Deal(pool, NewRand(1), AgeChild, nil, d)
		require.True(t, ok)
		assert.Equal(t, pool[0].Forbidden[:n], c.Forbidden, string(d))
	}
	assert.Len(t, pool[0].Forbidden, 7, "pool card untouched")
}

func TestTrimmed_ShortList(t *testing.T) {
	c := WordCard{ID: "x", Forbidden: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, c.Trimmed(Hard).Forbidden)
}

func TestTrimmed_DoesNotAlias(t *testing.T) {
	c := testPool(1)[0]
	trimmed := c.Trimmed(Easy)
	trimmed.Forbidden[0] = "changed"
	assert.Equal(t, "f1", c.Forbidden[0])
}

func TestDeal_ReproducibleWithSeed(t *testing.T) {
	pool := testPool(20)
	sequence := func(seed uint64) []string {
		r := NewRand(seed)
		exclude := make(map[string]bool)
		var ids []string
		for range 10 {
			c, ok := Deal(pool, r, AgeTeen, exclude, Hard)
			require.True(t, ok)
			exclude[c.ID] = true
			ids = append(ids, c.ID)
		}
		return ids
	}

	assert.Equal(t, sequence(99), sequence(99))
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	assert.NoError(t, err)
}
