package category

// Compose returns the arrow declared equal to f followed by g.
//
// Resolution order:
//  1. f and g must belong to c (ArrowNotInCategory).
//  2. f == g resolves to f.
//  3. codomain(f) must equal domain(g) (DomainMismatch).
//  4. The first arrow, in insertion order, whose equals table holds (f, g)
//     is the composite; otherwise UndeclaredComposition.
//
// Only literal declared pairs resolve. Composites are never chained through
// other equalities.
func (c *Category) Compose(f, g Arrow) (Arrow, error) {
	fr, err := c.record(f)
	if err != nil {
		return Arrow{}, err
	}

	gr, err := c.record(g)
	if err != nil {
		return Arrow{}, err
	}

	if f == g {
		return f, nil
	}

	if fr.codomain != gr.domain {
		return Arrow{}, newError(KindDomainMismatch,
			c.objects[fr.codomain].name+" != "+c.objects[gr.domain].name, fr.name, gr.name)
	}

	want := Pair{Before: f.index, After: g.index}

	for i, rec := range c.arrows {
		for _, p := range rec.equals {
			if p == want {
				return Arrow{owner: c, index: i}, nil
			}
		}
	}

	return Arrow{}, newError(KindUndeclaredComposition, "", fr.name, gr.name)
}

// Composable reports whether Compose(f, g) succeeds.
func (c *Category) Composable(f, g Arrow) bool {
	_, err := c.Compose(f, g)
	return err == nil
}
