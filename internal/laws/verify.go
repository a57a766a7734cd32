package laws

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"smallcat/internal/category"
	"smallcat/internal/diagnostic"
)

// Diagnostic codes reported by Verify.
const (
	CodeNoIdentity          = "no_identity"
	CodeLeftUnit            = "left_unit"
	CodeRightUnit           = "right_unit"
	CodeAssociativity       = "associativity"
	CodeUndeclaredComposite = "undeclared_composite"
	CodeForeignArrow        = "foreign_arrow"
)

// Verify checks every law of c and reports each breach. subject labels the
// findings.
//
// Every object must have an identity; every arrow must satisfy the unit
// laws at its domain and codomain; every type-correct triple f, g, k whose
// bracketings resolve on at least one side must resolve equally on both.
// Triples where neither side resolves are reported as infos, since partially
// specified categories are legitimate.
func Verify(c Category, subject string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	identities := true

	for o := range c.Objects() {
		if _, err := c.Identity(o); err != nil {
			identities = false

			res.AddError(CodeNoIdentity, err.Error(), subject)
		}
	}

	arrows, err := collect(c)
	if err != nil {
		res.AddError(CodeForeignArrow, err.Error(), subject)
		return res
	}

	if identities {
		for _, a := range arrows {
			dom, cod := a.dom, a.cod

			if !LeftUnit(c, dom, a.arrow) {
				res.AddError(CodeLeftUnit,
					fmt.Sprintf("id(%s);%s does not resolve to %s", dom.Name(), a.arrow.Name(), a.arrow.Name()),
					subject, a.arrow.Name())
			}

			if !RightUnit(c, cod, a.arrow) {
				res.AddError(CodeRightUnit,
					fmt.Sprintf("%s;id(%s) does not resolve to %s", a.arrow.Name(), cod.Name(), a.arrow.Name()),
					subject, a.arrow.Name())
			}
		}
	}

	for _, f := range arrows {
		for _, g := range arrows {
			if f.cod != g.dom {
				continue
			}

			for _, k := range arrows {
				if g.cod != k.dom {
					continue
				}

				checkTriple(c, res, subject, f.arrow, g.arrow, k.arrow)
			}
		}
	}

	return res
}

func checkTriple(c Category, res *diagnostic.Diagnostics, subject string, f, g, k category.Arrow) {
	if Associative(c, f, g, k) {
		return
	}

	names := []string{f.Name(), g.Name(), k.Name()}

	left, lerr := bracketLeft(c, f, g, k)
	right, rerr := bracketRight(c, f, g, k)

	switch {
	case lerr != nil && rerr != nil:
		res.AddInfo(CodeUndeclaredComposite, "neither bracketing resolves", subject, names...)
	case lerr != nil:
		res.AddError(CodeAssociativity,
			fmt.Sprintf("f;(g;k) = %s but (f;g);k fails: %v", right.Name(), lerr), subject, names...)
	case rerr != nil:
		res.AddError(CodeAssociativity,
			fmt.Sprintf("(f;g);k = %s but f;(g;k) fails: %v", left.Name(), rerr), subject, names...)
	default:
		res.AddError(CodeAssociativity,
			fmt.Sprintf("(f;g);k = %s but f;(g;k) = %s", left.Name(), right.Name()), subject, names...)
	}
}

func bracketLeft(c Category, f, g, k category.Arrow) (category.Arrow, error) {
	fg, err := c.Compose(f, g)
	if err != nil {
		return category.Arrow{}, err
	}

	return c.Compose(fg, k)
}

func bracketRight(c Category, f, g, k category.Arrow) (category.Arrow, error) {
	gk, err := c.Compose(g, k)
	if err != nil {
		return category.Arrow{}, err
	}

	return c.Compose(f, gk)
}

type typedArrow struct {
	arrow    category.Arrow
	dom, cod category.Object
}

func collect(c Category) ([]typedArrow, error) {
	var out []typedArrow

	for a := range c.Arrows() {
		dom, derr := c.Domain(a)
		cod, cerr := c.Codomain(a)

		if err := errors.Join(derr, cerr); err != nil {
			return nil, err
		}

		out = append(out, typedArrow{arrow: a, dom: dom, cod: cod})
	}

	return out, nil
}

// Named pairs a category with the label used for its findings.
type Named struct {
	Name     string
	Category Category
}

// VerifyAll verifies several categories concurrently and merges the
// findings in input order.
func VerifyAll(ctx context.Context, cats []Named) (*diagnostic.Diagnostics, error) {
	results := make([]*diagnostic.Diagnostics, len(cats))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)

	for i, nc := range cats {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = Verify(nc.Category, nc.Name)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &diagnostic.Diagnostics{}
	for _, r := range results {
		res.Merge(*r)
	}

	return res, nil
}
