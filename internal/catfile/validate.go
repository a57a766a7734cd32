package catfile

import (
	"fmt"
	"slices"

	"smallcat/internal/diagnostic"
)

// Validate checks a description structurally before building. It reports
// every problem it finds, where Build stops at the first.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "category file is nil", "")
		return res
	}

	subject := f.label()

	if f.Version != "1" {
		res.AddWarning("unknown_version", fmt.Sprintf("unknown version %q", f.Version), subject)
	}

	objects := map[string]struct{}{}

	for _, o := range f.Objects {
		if o == "" {
			res.AddError("empty_object_name", "object with empty name", subject)
			continue
		}

		if _, ok := objects[o]; ok {
			res.AddError("duplicate_object", fmt.Sprintf("duplicate object %q", o), subject)
			continue
		}

		objects[o] = struct{}{}
	}

	arrows := map[string]struct{}{}

	for _, a := range f.Arrows {
		if a.Name == "" {
			res.AddError("empty_arrow_name", "arrow with empty name", subject)
			continue
		}

		if _, ok := arrows[a.Name]; ok {
			res.AddError("duplicate_arrow", fmt.Sprintf("duplicate arrow %q", a.Name), subject, a.Name)
		}

		arrows[a.Name] = struct{}{}
	}

	used := map[string]struct{}{}

	for _, a := range f.Arrows {
		for _, end := range []string{a.Domain, a.Codomain} {
			used[end] = struct{}{}

			if _, ok := objects[end]; !ok {
				res.AddError("unknown_object", fmt.Sprintf("arrow %q references unknown object %q", a.Name, end),
					subject, a.Name)
			}
		}

		for _, p := range a.Equals {
			for _, ref := range []string{p.Before, p.After} {
				if _, ok := arrows[ref]; !ok {
					res.AddError("unknown_arrow", fmt.Sprintf("arrow %q declares %s;%s with unknown arrow %q",
						a.Name, p.Before, p.After, ref), subject, a.Name)
				}
			}
		}
	}

	for _, o := range f.Objects {
		if _, ok := used[o]; !ok && o != "" {
			res.AddWarning("isolated_object", fmt.Sprintf("object %q has no arrows", o), subject)
		}
	}

	for i, s := range f.Splits {
		validateSplit(res, subject, i, s, objects)
	}

	return res
}

var strategies = []string{StrategyRules, StrategyToken, StrategySimilarity}

func validateSplit(res *diagnostic.Diagnostics, subject string, i int, s SplitDef, objects map[string]struct{}) {
	where := fmt.Sprintf("splits[%d]", i)

	if _, ok := objects[s.Object]; !ok {
		res.AddError("unknown_split_object", fmt.Sprintf("%s: unknown object %q", where, s.Object), subject)
	}

	if !slices.Contains(strategies, s.Strategy) {
		res.AddError("unknown_strategy", fmt.Sprintf("%s: unknown strategy %q", where, s.Strategy), subject)
	}

	if s.Strategy == StrategyRules {
		if len(s.Rules) == 0 {
			res.AddError("missing_rules", where+": rules strategy without rules", subject)
		}

		if s.Fallback == "" {
			res.AddWarning("empty_fallback", where+": unmatched arrows go to the group \"\"", subject)
		}
	}

	for j, r := range s.Rules {
		if r.Group == "" || r.Contains == "" {
			res.AddError("incomplete_rule", fmt.Sprintf("%s.rules[%d]: group and contains are required", where, j), subject)
		}
	}

	if s.Strategy == StrategySimilarity && (s.Threshold <= 0 || s.Threshold > 1) {
		res.AddError("invalid_threshold", fmt.Sprintf("%s: threshold %v outside (0, 1]", where, s.Threshold), subject)
	}
}
