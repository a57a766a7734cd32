package catfile

import (
	"fmt"

	"smallcat/internal/category"
	"smallcat/internal/split"
)

// Build constructs the category described by f.
func (f *File) Build() (*category.Category, error) {
	specs := make([]category.ArrowSpec, len(f.Arrows))
	for i, a := range f.Arrows {
		spec := category.ArrowSpec{Name: a.Name, Domain: a.Domain, Codomain: a.Codomain}
		for _, p := range a.Equals {
			spec.Equals = append(spec.Equals, category.NamePair{Before: p.Before, After: p.After})
		}

		specs[i] = spec
	}

	c, err := category.Build(category.Objects(f.Objects...), specs)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", f.label(), err)
	}

	return c, nil
}

// FromCategory describes c as a File labelled name.
func FromCategory(name string, c *category.Category) *File {
	objects, arrows := c.Spec()

	f := &File{Version: "1", Name: name, Objects: make([]string, len(objects))}
	for i, o := range objects {
		f.Objects[i] = o.Name()
	}

	for _, a := range arrows {
		def := ArrowDef{Name: a.Name, Domain: a.Domain, Codomain: a.Codomain}
		for _, p := range a.Equals {
			def.Equals = append(def.Equals, PairDef{Before: p.Before, After: p.After})
		}

		f.Arrows = append(f.Arrows, def)
	}

	return f
}

// Classifier returns the classifier selected by the split's strategy.
func (s SplitDef) Classifier() (split.Classifier, error) {
	switch s.Strategy {
	case StrategyRules:
		rules := make([]split.Rule, len(s.Rules))
		for i, r := range s.Rules {
			rules[i] = split.Rule{Group: r.Group, Contains: r.Contains}
		}

		return split.Contains(rules, s.Fallback), nil
	case StrategyToken:
		return split.ByToken(s.Fallback), nil
	case StrategySimilarity:
		return split.BySimilarity(s.Threshold), nil
	default:
		return nil, fmt.Errorf("split %s: unknown strategy %q", s.Object, s.Strategy)
	}
}

// Options returns the split options declared by s.
func (s SplitDef) Options() []split.Option {
	if s.Identities {
		return []split.Option{split.WithIdentities()}
	}

	return nil
}

// Run splits c as declared by s.
func (s SplitDef) Run(c *category.Category, opts ...split.Option) ([]split.Piece, error) {
	classify, err := s.Classifier()
	if err != nil {
		return nil, err
	}

	return split.Split(c, s.Object, classify, append(s.Options(), opts...)...)
}

func (f *File) label() string {
	if f.Name == "" {
		return "<unnamed>"
	}

	return f.Name
}
