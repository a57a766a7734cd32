package split

import (
	"fmt"

	"go.uber.org/zap"

	"smallcat/internal/category"
	"smallcat/internal/toy"
)

// Classifier maps an arrow name to the key of its group.
type Classifier func(arrowName string) string

// Group is one bucket of attribute arrows, before materialization.
type Group struct {
	Key     string
	Objects []string
	Arrows  []string
}

// Piece is a materialized group.
type Piece struct {
	Key      string
	Category *category.Category
}

type options struct {
	identities bool
	logger     *zap.Logger
}

// Option configures Split.
type Option func(*options)

// WithIdentities makes every piece carry an identity arrow for each of its
// objects: the source category's identity when it has one, otherwise a
// synthesized arrow named by toy.IdentityName.
func WithIdentities() Option {
	return func(o *options) { o.identities = true }
}

// WithLogger sets the logger used to report grouping decisions.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Groups buckets the attribute arrows of table by classify. Keys appear in
// first-seen order, as do arrows within a group and objects within a group
// (table first).
func Groups(c *category.Category, table string, classify Classifier) ([]Group, error) {
	t, err := c.Object(table)
	if err != nil {
		return nil, fmt.Errorf("split table: %w", err)
	}

	if classify == nil {
		return nil, fmt.Errorf("split %s: nil classifier", table)
	}

	var (
		groups []Group
		byKey  = map[string]int{}
		seen   = map[category.Arrow]struct{}{}
	)

	for a := range c.Arrows() {
		dom, err := c.Domain(a)
		if err != nil {
			return nil, err
		}

		cod, err := c.Codomain(a)
		if err != nil {
			return nil, err
		}

		if dom != t || cod == t {
			continue
		}

		if _, dup := seen[a]; dup {
			continue
		}

		seen[a] = struct{}{}

		key := classify(a.Name())

		gi, ok := byKey[key]
		if !ok {
			gi = len(groups)
			byKey[key] = gi
			groups = append(groups, Group{Key: key, Objects: []string{t.Name()}})
		}

		g := &groups[gi]
		g.Arrows = append(g.Arrows, a.Name())
		g.Objects = appendUnique(g.Objects, cod.Name())
	}

	return groups, nil
}

// Split materializes the groups of table as independent categories, one per
// key in first-seen order. The input category is not modified.
func Split(c *category.Category, table string, classify Classifier, opts ...Option) ([]Piece, error) {
	cfg := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	groups, err := Groups(c, table, classify)
	if err != nil {
		return nil, err
	}

	pieces := make([]Piece, 0, len(groups))

	for _, g := range groups {
		sub, err := materialize(c, g, cfg.identities)
		if err != nil {
			return nil, fmt.Errorf("split %s group %q: %w", table, g.Key, err)
		}

		cfg.logger.Debug("split group",
			zap.String("table", table),
			zap.String("group", g.Key),
			zap.Strings("objects", g.Objects),
			zap.Strings("arrows", g.Arrows),
			zap.Bool("identities", cfg.identities))

		pieces = append(pieces, Piece{Key: g.Key, Category: sub})
	}

	cfg.logger.Info("split complete",
		zap.String("table", table),
		zap.Int("groups", len(pieces)))

	return pieces, nil
}

func materialize(c *category.Category, g Group, identities bool) (*category.Category, error) {
	objects := category.Objects(g.Objects...)
	specs := make([]category.ArrowSpec, 0, len(g.Arrows)+len(g.Objects))

	if identities {
		for _, o := range objects {
			specs = append(specs, identitySpec(c, o))
		}
	}

	for _, name := range g.Arrows {
		a, err := c.Arrow(name)
		if err != nil {
			return nil, err
		}

		dom, _ := c.Domain(a)
		cod, _ := c.Codomain(a)

		specs = append(specs, category.ArrowSpec{Name: name, Domain: dom.Name(), Codomain: cod.Name()})
	}

	return category.Build(objects, specs)
}

func identitySpec(c *category.Category, o category.Object) category.ArrowSpec {
	name := toy.IdentityName(o.Name())
	if id, err := c.Identity(o); err == nil {
		name = id.Name()
	}

	return category.ArrowSpec{Name: name, Domain: o.Name(), Codomain: o.Name()}
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}

	return append(list, s)
}
