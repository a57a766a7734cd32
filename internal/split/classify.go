package split

import (
	"strings"

	"smallcat/internal/naming"
)

// Rule sends arrows whose name contains Contains to Group.
type Rule struct {
	Group    string
	Contains string
}

// Contains classifies by the first rule whose substring occurs in the arrow
// name; unmatched names go to fallback.
func Contains(rules []Rule, fallback string) Classifier {
	return func(name string) string {
		for _, r := range rules {
			if strings.Contains(name, r.Contains) {
				return r.Group
			}
		}

		return fallback
	}
}

// ByToken classifies by the last token of the arrow name, so "first_name"
// and "lastName" share the group "name". Single-token names go to fallback
// when it is set, otherwise to their own token.
func ByToken(fallback string) Classifier {
	return func(name string) string {
		tokens := naming.Tokens(name)

		switch {
		case len(tokens) > 1:
			return tokens[len(tokens)-1]
		case fallback != "":
			return fallback
		case len(tokens) == 1:
			return tokens[0]
		default:
			return name
		}
	}
}

// BySimilarity clusters arrow names: a name joins the first existing group
// whose founding name scores at least threshold under naming.Similarity,
// otherwise it founds a new group keyed by its normalized form. The returned
// classifier is stateful and must be used for a single Split call.
func BySimilarity(threshold float64) Classifier {
	var founders []string

	return func(name string) string {
		for _, f := range founders {
			if naming.Similarity(f, name) >= threshold {
				return naming.Normalize(f)
			}
		}

		founders = append(founders, name)

		return naming.Normalize(name)
	}
}
