package catfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either the full mapping form or the shorthand
// single-key form {f: "A -> B"}.
func (a *ArrowDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected arrow mapping, got %v", node.Line, kindName(node.Kind))
	}

	if len(node.Content) == 2 && (node.Content[0].Value != "name" || strings.Contains(node.Content[1].Value, "->")) {
		return a.decodeShorthand(node)
	}

	type plain ArrowDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*a = ArrowDef(p)

	return nil
}

func (a *ArrowDef) decodeShorthand(node *yaml.Node) error {
	var name, sig string

	if err := node.Content[0].Decode(&name); err != nil {
		return fmt.Errorf("line %d: invalid arrow name: %w", node.Line, err)
	}

	if err := node.Content[1].Decode(&sig); err != nil {
		return fmt.Errorf("line %d: arrow %q: expected \"domain -> codomain\": %w", node.Line, name, err)
	}

	dom, cod, ok := strings.Cut(sig, "->")
	dom, cod = strings.TrimSpace(dom), strings.TrimSpace(cod)

	if !ok || dom == "" || cod == "" {
		return fmt.Errorf("line %d: arrow %q: expected \"domain -> codomain\", got %q", node.Line, name, sig)
	}

	*a = ArrowDef{Name: name, Domain: dom, Codomain: cod}

	return nil
}

// MarshalYAML writes arrows without composites in shorthand form.
func (a ArrowDef) MarshalYAML() (any, error) {
	if len(a.Equals) == 0 {
		return map[string]string{a.Name: a.Domain + " -> " + a.Codomain}, nil
	}

	type plain ArrowDef

	return plain(a), nil
}

// UnmarshalYAML accepts "f;g" or [f, g].
func (p *PairDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		before, after, ok := strings.Cut(node.Value, ";")
		before, after = strings.TrimSpace(before), strings.TrimSpace(after)

		if !ok || before == "" || after == "" {
			return fmt.Errorf("line %d: expected \"f;g\", got %q", node.Line, node.Value)
		}

		*p = PairDef{Before: before, After: after}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		if len(arr) != 2 {
			return fmt.Errorf("line %d: expected [f, g], got %d elements", node.Line, len(arr))
		}

		*p = PairDef{Before: arr[0], After: arr[1]}

		return nil

	default:
		return errors.New("expected \"f;g\" or [f, g]")
	}
}

// MarshalYAML writes the pair as "f;g".
func (p PairDef) MarshalYAML() (any, error) {
	return p.Before + ";" + p.After, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
