package toy

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smallcat/internal/laws"
)

func TestCatalog_Sizes(t *testing.T) {
	tests := []struct {
		name    string
		objects int
		arrows  int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"two", 2, 3},
		{"three", 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ByName(tt.name)
			require.NoError(t, err)

			assert.Equal(t, tt.objects, c.ObjectCount())
			assert.Equal(t, tt.arrows, c.ArrowCount())
		})
	}
}

func TestCatalog_SatisfiesLaws(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			require.NoError(t, err)

			res := laws.Verify(c, name)
			assert.True(t, res.IsValid(), "%v", res.Error())
			assert.Empty(t, res.Infos)
		})
	}
}

func TestThree_Composite(t *testing.T) {
	c := Three()

	f, _ := c.Arrow("f")
	g, _ := c.Arrow("g")

	h, err := c.Compose(f, g)
	require.NoError(t, err)
	assert.Equal(t, "h", h.Name())
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("four")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "four")
	assert.True(t, slices.IsSorted(Names()))
}
