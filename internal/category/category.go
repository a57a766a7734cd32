package category

import (
	"fmt"
	"iter"
	"strings"
)

// Category is an immutable finite category. Objects and arrows are kept in
// insertion order and addressed by position.
type Category struct {
	objects []Object
	arrows  []arrowRecord

	objectIndex map[string]int
	arrowIndex  map[string]int
}

// Build constructs a category from an object list and arrow descriptions.
//
// Equality pairs may name arrows declared later in the list. Build fails
// with UnknownObject, UnknownArrow, DuplicateName or AmbiguousIdentity; an
// object without an identity candidate is accepted and reported later by
// Identity.
func Build(objects []Object, arrows []ArrowSpec) (*Category, error) {
	c := &Category{
		objects:     make([]Object, 0, len(objects)),
		arrows:      make([]arrowRecord, 0, len(arrows)),
		objectIndex: make(map[string]int, len(objects)),
		arrowIndex:  make(map[string]int, len(arrows)),
	}

	for _, o := range objects {
		if _, ok := c.objectIndex[o.name]; ok {
			return nil, newError(KindDuplicateName, "object", o.name)
		}

		c.objectIndex[o.name] = len(c.objects)
		c.objects = append(c.objects, o)
	}

	// Names first, so equality pairs can point forward.
	for i, spec := range arrows {
		if _, ok := c.arrowIndex[spec.Name]; ok {
			return nil, newError(KindDuplicateName, "arrow", spec.Name)
		}

		c.arrowIndex[spec.Name] = i
	}

	for _, spec := range arrows {
		rec, err := c.resolveSpec(spec)
		if err != nil {
			return nil, err
		}

		c.arrows = append(c.arrows, rec)
	}

	if err := c.checkIdentityCandidates(); err != nil {
		return nil, err
	}

	return c, nil
}

// MustBuild is like Build but panics on error. Intended for constant tables.
func MustBuild(objects []Object, arrows []ArrowSpec) *Category {
	c, err := Build(objects, arrows)
	if err != nil {
		panic(fmt.Sprintf("category: %v", err))
	}

	return c
}

func (c *Category) resolveSpec(spec ArrowSpec) (arrowRecord, error) {
	dom, ok := c.objectIndex[spec.Domain]
	if !ok {
		return arrowRecord{}, newError(KindUnknownObject, "domain of "+spec.Name, spec.Domain)
	}

	cod, ok := c.objectIndex[spec.Codomain]
	if !ok {
		return arrowRecord{}, newError(KindUnknownObject, "codomain of "+spec.Name, spec.Codomain)
	}

	rec := arrowRecord{name: spec.Name, domain: dom, codomain: cod}

	for _, np := range spec.Equals {
		before, ok := c.arrowIndex[np.Before]
		if !ok {
			return arrowRecord{}, newError(KindUnknownArrow, "equals of "+spec.Name, np.Before)
		}

		after, ok := c.arrowIndex[np.After]
		if !ok {
			return arrowRecord{}, newError(KindUnknownArrow, "equals of "+spec.Name, np.After)
		}

		rec.equals = append(rec.equals, Pair{Before: before, After: after})
	}

	return rec, nil
}

func (c *Category) checkIdentityCandidates() error {
	seen := make([]int, len(c.objects))
	for i := range seen {
		seen[i] = -1
	}

	for i, rec := range c.arrows {
		if rec.domain != rec.codomain {
			continue
		}

		if prev := seen[rec.domain]; prev >= 0 {
			return newError(KindAmbiguousIdentity, "object "+c.objects[rec.domain].name,
				c.arrows[prev].name, rec.name)
		}

		seen[rec.domain] = i
	}

	return nil
}

// Objects yields the objects in insertion order. The sequence can be ranged
// over any number of times.
func (c *Category) Objects() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, o := range c.objects {
			if !yield(o) {
				return
			}
		}
	}
}

// Arrows yields the arrows in insertion order. The sequence can be ranged
// over any number of times.
func (c *Category) Arrows() iter.Seq[Arrow] {
	return func(yield func(Arrow) bool) {
		for i := range c.arrows {
			if !yield(Arrow{owner: c, index: i}) {
				return
			}
		}
	}
}

// ObjectCount returns the number of objects.
func (c *Category) ObjectCount() int { return len(c.objects) }

// ArrowCount returns the number of arrows.
func (c *Category) ArrowCount() int { return len(c.arrows) }

// Object looks up an object by name.
func (c *Category) Object(name string) (Object, error) {
	i, ok := c.objectIndex[name]
	if !ok {
		return Object{}, newError(KindUnknownObject, "", name)
	}

	return c.objects[i], nil
}

// Arrow looks up an arrow by name.
func (c *Category) Arrow(name string) (Arrow, error) {
	i, ok := c.arrowIndex[name]
	if !ok {
		return Arrow{}, newError(KindUnknownArrow, "", name)
	}

	return Arrow{owner: c, index: i}, nil
}

// Owns reports whether a belongs to c.
func (c *Category) Owns(a Arrow) bool {
	return a.owner == c && a.index >= 0 && a.index < len(c.arrows)
}

func (c *Category) record(a Arrow) (arrowRecord, error) {
	if !c.Owns(a) {
		return arrowRecord{}, newError(KindArrowNotInCategory, "", a.Name())
	}

	return c.arrows[a.index], nil
}

// Domain returns the source object of a.
func (c *Category) Domain(a Arrow) (Object, error) {
	rec, err := c.record(a)
	if err != nil {
		return Object{}, err
	}

	return c.objects[rec.domain], nil
}

// Codomain returns the target object of a.
func (c *Category) Codomain(a Arrow) (Object, error) {
	rec, err := c.record(a)
	if err != nil {
		return Object{}, err
	}

	return c.objects[rec.codomain], nil
}

// Identity returns the unique arrow whose domain and codomain are o.
func (c *Category) Identity(o Object) (Arrow, error) {
	oi, ok := c.objectIndex[o.name]
	if !ok {
		return Arrow{}, newError(KindUnknownObject, "", o.name)
	}

	found := -1

	for i, rec := range c.arrows {
		if rec.domain != oi || rec.codomain != oi {
			continue
		}

		if found >= 0 {
			return Arrow{}, newError(KindAmbiguousIdentity, "object "+o.name, c.arrows[found].name, rec.name)
		}

		found = i
	}

	if found < 0 {
		return Arrow{}, newError(KindNoIdentity, "", o.name)
	}

	return Arrow{owner: c, index: found}, nil
}

// HasArrow reports whether any arrow runs from the named domain to the named
// codomain.
func (c *Category) HasArrow(domain, codomain string) bool {
	dom, ok := c.objectIndex[domain]
	if !ok {
		return false
	}

	cod, ok := c.objectIndex[codomain]
	if !ok {
		return false
	}

	for _, rec := range c.arrows {
		if rec.domain == dom && rec.codomain == cod {
			return true
		}
	}

	return false
}

// IsIsomorphism reports whether arrows run both ways between a and b.
func (c *Category) IsIsomorphism(a, b string) bool {
	return c.HasArrow(a, b) && c.HasArrow(b, a)
}

// Spec returns the object list and arrow descriptions that rebuild c.
func (c *Category) Spec() ([]Object, []ArrowSpec) {
	objects := make([]Object, len(c.objects))
	copy(objects, c.objects)

	arrows := make([]ArrowSpec, len(c.arrows))
	for i, rec := range c.arrows {
		spec := ArrowSpec{
			Name:     rec.name,
			Domain:   c.objects[rec.domain].name,
			Codomain: c.objects[rec.codomain].name,
		}

		for _, p := range rec.equals {
			spec.Equals = append(spec.Equals, NamePair{
				Before: c.arrows[p.Before].name,
				After:  c.arrows[p.After].name,
			})
		}

		arrows[i] = spec
	}

	return objects, arrows
}

// String renders the category as
//
//	objects: [A B]
//	arrows: [f: A -> B, id_A: A -> A]
func (c *Category) String() string {
	names := make([]string, len(c.objects))
	for i, o := range c.objects {
		names[i] = o.name
	}

	arrows := make([]string, len(c.arrows))
	for i, rec := range c.arrows {
		arrows[i] = c.renderArrow(rec)
	}

	return fmt.Sprintf("objects: [%s]\narrows: [%s]", strings.Join(names, " "), strings.Join(arrows, ", "))
}

func (c *Category) renderArrow(rec arrowRecord) string {
	return fmt.Sprintf("%s: %s -> %s", rec.name, c.objects[rec.domain].name, c.objects[rec.codomain].name)
}
