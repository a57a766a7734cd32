package catfile

// File is the root of a category description.
type File struct {
	// Version of the description format.
	Version string `yaml:"version,omitempty"`

	// Name labels the category in diagnostics and output.
	Name string `yaml:"name,omitempty"`

	// Objects lists object names in order.
	Objects []string `yaml:"objects"`

	// Arrows lists arrows in order.
	Arrows []ArrowDef `yaml:"arrows"`

	// Splits declares schema splits to run against the category.
	Splits []SplitDef `yaml:"splits,omitempty"`
}

// ArrowDef describes one arrow.
type ArrowDef struct {
	Name     string    `yaml:"name"`
	Domain   string    `yaml:"domain"`
	Codomain string    `yaml:"codomain"`
	Equals   []PairDef `yaml:"equals,omitempty"`
}

// PairDef is a declared composite: Before followed by After.
type PairDef struct {
	Before string
	After  string
}

// Split strategies.
const (
	StrategyRules      = "rules"
	StrategyToken      = "token"
	StrategySimilarity = "similarity"
)

// DefaultThreshold is the similarity threshold used when none is set.
const DefaultThreshold = 0.6

// SplitDef declares one schema split.
type SplitDef struct {
	// Object is the table object whose attributes are split.
	Object string `yaml:"object"`

	// Strategy selects the classifier: rules, token or similarity.
	Strategy string `yaml:"strategy,omitempty"`

	// Rules are substring rules for the rules strategy, first match wins.
	Rules []RuleDef `yaml:"rules,omitempty"`

	// Fallback is the group for names no rule matches (rules) or for
	// single-token names (token).
	Fallback string `yaml:"fallback,omitempty"`

	// Threshold is the minimum similarity for the similarity strategy.
	Threshold float64 `yaml:"threshold,omitempty"`

	// Identities makes each piece carry identity arrows.
	Identities bool `yaml:"identities,omitempty"`
}

// RuleDef sends arrows whose name contains Contains to Group.
type RuleDef struct {
	Group    string `yaml:"group"`
	Contains string `yaml:"contains"`
}
