// Package toy holds the fixed 0/1/2/3-object example categories as constant
// tables built through category.Build.
package toy

import (
	"fmt"
	"slices"

	"smallcat/internal/category"
)

// IdentityName is the naming convention for identity arrows.
func IdentityName(object string) string {
	return "id_" + object
}

// Identities returns one identity arrow spec per object.
func Identities(objects ...string) []category.ArrowSpec {
	out := make([]category.ArrowSpec, len(objects))
	for i, o := range objects {
		out[i] = category.ArrowSpec{Name: IdentityName(o), Domain: o, Codomain: o}
	}

	return out
}

// Unital returns an arrow spec that declares itself as both id;a and a;id,
// plus any extra composites.
func Unital(name, domain, codomain string, extra ...category.NamePair) category.ArrowSpec {
	eq := []category.NamePair{
		{Before: IdentityName(domain), After: name},
		{Before: name, After: IdentityName(codomain)},
	}

	return category.ArrowSpec{
		Name:     name,
		Domain:   domain,
		Codomain: codomain,
		Equals:   append(eq, extra...),
	}
}

// Zero is the empty category.
func Zero() *category.Category {
	return category.MustBuild(nil, nil)
}

// One is the terminal category: one object and its identity.
func One() *category.Category {
	return category.MustBuild(category.Objects("*"), Identities("*"))
}

// Two is the walking arrow A -> B.
func Two() *category.Category {
	arrows := append(Identities("A", "B"),
		Unital("f", "A", "B"),
	)

	return category.MustBuild(category.Objects("A", "B"), arrows)
}

// Three is the commuting triangle A -> B -> C with f;g = h.
func Three() *category.Category {
	arrows := append(Identities("A", "B", "C"),
		Unital("f", "A", "B"),
		Unital("g", "B", "C"),
		Unital("h", "A", "C", category.NamePair{Before: "f", After: "g"}),
	)

	return category.MustBuild(category.Objects("A", "B", "C"), arrows)
}

var catalog = map[string]func() *category.Category{
	"zero":  Zero,
	"one":   One,
	"two":   Two,
	"three": Three,
}

// Names returns the catalog names in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for n := range catalog {
		out = append(out, n)
	}

	slices.Sort(out)

	return out
}

// ByName returns the toy category registered under name.
func ByName(name string) (*category.Category, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown toy category %q (expected one of %v)", name, Names())
	}

	return fn(), nil
}
