package category

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// triangle builds X, Y, Z with f;g = h and identities.
func triangle(t *testing.T) *Category {
	t.Helper()

	c, err := Build(Objects("X", "Y", "Z"), []ArrowSpec{
		{Name: "id_X", Domain: "X", Codomain: "X"},
		{Name: "id_Y", Domain: "Y", Codomain: "Y"},
		{Name: "id_Z", Domain: "Z", Codomain: "Z"},
		{Name: "f", Domain: "X", Codomain: "Y"},
		{Name: "g", Domain: "Y", Codomain: "Z"},
		{Name: "h", Domain: "X", Codomain: "Z", Equals: []NamePair{{"f", "g"}}},
	})
	require.NoError(t, err)

	return c
}

func arrow(t *testing.T, c *Category, name string) Arrow {
	t.Helper()

	a, err := c.Arrow(name)
	require.NoError(t, err)

	return a
}

func TestBuild_ResolvesNames(t *testing.T) {
	c := triangle(t)

	assert.Equal(t, 3, c.ObjectCount())
	assert.Equal(t, 6, c.ArrowCount())

	h := arrow(t, c, "h")
	assert.Equal(t, "h", h.Name())
	assert.Equal(t, 5, h.Index())
	assert.Equal(t, []Pair{{Before: 3, After: 4}}, h.Declared())

	dom, err := c.Domain(h)
	require.NoError(t, err)
	assert.Equal(t, NewObject("X"), dom)

	cod, err := c.Codomain(h)
	require.NoError(t, err)
	assert.Equal(t, "Z", cod.Name())
}

func TestBuild_ForwardEqualsReference(t *testing.T) {
	c, err := Build(Objects("A", "B", "C"), []ArrowSpec{
		{Name: "h", Domain: "A", Codomain: "C", Equals: []NamePair{{"f", "g"}}},
		{Name: "f", Domain: "A", Codomain: "B"},
		{Name: "g", Domain: "B", Codomain: "C"},
	})
	require.NoError(t, err)

	got, err := c.Compose(arrow(t, c, "f"), arrow(t, c, "g"))
	require.NoError(t, err)
	assert.Equal(t, "h", got.Name())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		objects []Object
		arrows  []ArrowSpec
		kind    ErrorKind
		sent    error
		names   []string
	}{
		{
			name:    "unknown domain",
			objects: Objects("A"),
			arrows:  []ArrowSpec{{Name: "f", Domain: "Q", Codomain: "A"}},
			kind:    KindUnknownObject,
			sent:    ErrUnknownObject,
			names:   []string{"Q"},
		},
		{
			name:    "unknown codomain",
			objects: Objects("A"),
			arrows:  []ArrowSpec{{Name: "f", Domain: "A", Codomain: "B"}},
			kind:    KindUnknownObject,
			sent:    ErrUnknownObject,
			names:   []string{"B"},
		},
		{
			name:    "unknown arrow in equals",
			objects: Objects("A"),
			arrows: []ArrowSpec{
				{Name: "id_A", Domain: "A", Codomain: "A", Equals: []NamePair{{"id_A", "nope"}}},
			},
			kind:  KindUnknownArrow,
			sent:  ErrUnknownArrow,
			names: []string{"nope"},
		},
		{
			name:    "duplicate object",
			objects: Objects("A", "A"),
			kind:    KindDuplicateName,
			sent:    ErrDuplicateName,
			names:   []string{"A"},
		},
		{
			name:    "duplicate arrow",
			objects: Objects("A", "B"),
			arrows: []ArrowSpec{
				{Name: "f", Domain: "A", Codomain: "B"},
				{Name: "f", Domain: "B", Codomain: "A"},
			},
			kind:  KindDuplicateName,
			sent:  ErrDuplicateName,
			names: []string{"f"},
		},
		{
			name:    "two identity candidates",
			objects: Objects("A"),
			arrows: []ArrowSpec{
				{Name: "id_A", Domain: "A", Codomain: "A"},
				{Name: "loop", Domain: "A", Codomain: "A"},
			},
			kind:  KindAmbiguousIdentity,
			sent:  ErrAmbiguousIdentity,
			names: []string{"id_A", "loop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Build(tt.objects, tt.arrows)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.sent)
			assert.Equal(t, tt.kind, KindOf(err))

			var ce *Error
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.names, ce.Names)

			for _, n := range tt.names {
				assert.Contains(t, err.Error(), n)
			}
		})
	}
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(Objects("A"), []ArrowSpec{{Name: "f", Domain: "A", Codomain: "B"}})
	})
}

func TestIdentity(t *testing.T) {
	c := triangle(t)

	for o := range c.Objects() {
		id, err := c.Identity(o)
		require.NoError(t, err, o.Name())
		assert.Equal(t, "id_"+o.Name(), id.Name())

		dom, _ := c.Domain(id)
		cod, _ := c.Codomain(id)
		assert.Equal(t, o, dom)
		assert.Equal(t, o, cod)
	}
}

func TestIdentity_Missing(t *testing.T) {
	c, err := Build(Objects("A", "B"), []ArrowSpec{{Name: "f", Domain: "A", Codomain: "B"}})
	require.NoError(t, err)

	_, err = c.Identity(NewObject("A"))
	require.ErrorIs(t, err, ErrNoIdentity)
	assert.Contains(t, err.Error(), `"A"`)

	_, err = c.Identity(NewObject("Q"))
	assert.ErrorIs(t, err, ErrUnknownObject)
}

func TestForeignArrow(t *testing.T) {
	c := triangle(t)
	other := triangle(t)

	f := arrow(t, other, "f")
	assert.False(t, c.Owns(f))

	_, err := c.Domain(f)
	assert.ErrorIs(t, err, ErrArrowNotInCategory)

	_, err = c.Codomain(Arrow{})
	assert.ErrorIs(t, err, ErrArrowNotInCategory)

	_, err = c.Compose(f, arrow(t, c, "g"))
	require.ErrorIs(t, err, ErrArrowNotInCategory)
	assert.Contains(t, err.Error(), `"f"`)
}

func TestLookups(t *testing.T) {
	c := triangle(t)

	o, err := c.Object("Y")
	require.NoError(t, err)
	assert.Equal(t, "Y", o.String())

	_, err = c.Object("W")
	assert.ErrorIs(t, err, ErrUnknownObject)

	_, err = c.Arrow("k")
	assert.ErrorIs(t, err, ErrUnknownArrow)
}

func TestIterators_Restartable(t *testing.T) {
	c := triangle(t)

	first := slices.Collect(c.Objects())
	second := slices.Collect(c.Objects())

	if diff := cmp.Diff([]string{"X", "Y", "Z"}, names(first)); diff != "" {
		t.Errorf("objects mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, first, second)

	var arrows []string
	for a := range c.Arrows() {
		arrows = append(arrows, a.Name())
	}

	want := []string{"id_X", "id_Y", "id_Z", "f", "g", "h"}
	if diff := cmp.Diff(want, arrows); diff != "" {
		t.Errorf("arrows mismatch (-want +got):\n%s", diff)
	}

	// Early break must not disturb later iteration.
	for range c.Arrows() {
		break
	}

	assert.Len(t, slices.Collect(c.Arrows()), 6)
}

func TestHasArrowAndIsomorphism(t *testing.T) {
	oneWay, err := Build(Objects("A", "B", "C"), []ArrowSpec{
		{Name: "f", Domain: "A", Codomain: "B"},
		{Name: "g", Domain: "A", Codomain: "C"},
		{Name: "h", Domain: "B", Codomain: "C"},
	})
	require.NoError(t, err)

	assert.True(t, oneWay.HasArrow("A", "B"))
	assert.False(t, oneWay.HasArrow("B", "A"))
	assert.False(t, oneWay.HasArrow("A", "nowhere"))
	assert.False(t, oneWay.IsIsomorphism("A", "B"))

	bothWays, err := Build(Objects("A", "B"), []ArrowSpec{
		{Name: "f", Domain: "A", Codomain: "B"},
		{Name: "g", Domain: "B", Codomain: "A"},
	})
	require.NoError(t, err)

	assert.True(t, bothWays.IsIsomorphism("A", "B"))
	assert.True(t, bothWays.IsIsomorphism("B", "A"))
}

func TestSpec_Rebuilds(t *testing.T) {
	c := triangle(t)

	objects, arrows := c.Spec()
	again, err := Build(objects, arrows)
	require.NoError(t, err)

	assert.Equal(t, c.String(), again.String())
	assert.Equal(t, []NamePair{{Before: "f", After: "g"}}, arrows[5].Equals)
}

func TestString(t *testing.T) {
	c, err := Build(Objects("A", "B"), []ArrowSpec{{Name: "f", Domain: "A", Codomain: "B"}})
	require.NoError(t, err)

	assert.Equal(t, "objects: [A B]\narrows: [f: A -> B]", c.String())
	assert.Equal(t, "f: A -> B", arrow(t, c, "f").String())
	assert.Equal(t, "<detached arrow>", Arrow{}.String())
}

func TestConcurrentReaders(t *testing.T) {
	c := triangle(t)
	f := arrow(t, c, "f")
	g := arrow(t, c, "g")

	var eg errgroup.Group
	for range 8 {
		eg.Go(func() error {
			for range 100 {
				h, err := c.Compose(f, g)
				if err != nil {
					return err
				}

				if h.Name() != "h" {
					return errors.New("unexpected composite " + h.Name())
				}

				for o := range c.Objects() {
					if _, err := c.Identity(o); err != nil {
						return err
					}
				}
			}

			return nil
		})
	}

	require.NoError(t, eg.Wait())
}

func names(objects []Object) []string {
	out := make([]string, len(objects))
	for i, o := range objects {
		out[i] = o.Name()
	}

	return out
}
