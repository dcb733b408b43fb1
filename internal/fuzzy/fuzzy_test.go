package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"Ahri", "Ahri", 0},
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"LeeSin", "leesin", 0},
		{"Kai'Sa", "Kaisa", 1},
		{"Nunu & Willump", "Nunu", 10},
	}

	for _, tc := range cases {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.want, Distance(tc.a, tc.b))
			assert.Equal(t, tc.want, Distance(tc.b, tc.a), "distance must be symmetric")
		})
	}
}

func TestClosest(t *testing.T) {
	catalog := []string{"Aatrox", "Ahri", "KSante", "Kaisa", "MonkeyKing", "Nunu", "Renata"}

	match, d, ok := Closest("Kai'Sa", catalog)
	assert.True(t, ok)
	assert.Equal(t, "Kaisa", match)
	assert.Equal(t, 1, d)

	match, _, ok = Closest("Renata Glasc", catalog)
	assert.True(t, ok)
	assert.Equal(t, "Renata", match)

	_, _, ok = Closest("Ahri", nil)
	assert.False(t, ok)
}

func TestClosest_TieKeepsFirst(t *testing.T) {
	match, d, ok := Closest("ab", []string{"ax", "xb", "ab1"})
	assert.True(t, ok)
	assert.Equal(t, 1, d)
	assert.Equal(t, "ax", match)
}
