package laws

import (
	"iter"

	"smallcat/internal/category"
)

// Category is the capability the law checker needs. *category.Category
// implements it.
type Category interface {
	Compose(f, g category.Arrow) (category.Arrow, error)
	Identity(o category.Object) (category.Arrow, error)
	Domain(a category.Arrow) (category.Object, error)
	Codomain(a category.Arrow) (category.Object, error)
	Objects() iter.Seq[category.Object]
	Arrows() iter.Seq[category.Arrow]
}

var _ Category = (*category.Category)(nil)

// Associative reports whether (f;g);k and f;(g;k) both resolve to the same
// arrow.
func Associative(c Category, f, g, k category.Arrow) bool {
	fg, err := c.Compose(f, g)
	if err != nil {
		return false
	}

	left, err := c.Compose(fg, k)
	if err != nil {
		return false
	}

	gk, err := c.Compose(g, k)
	if err != nil {
		return false
	}

	right, err := c.Compose(f, gk)
	if err != nil {
		return false
	}

	return left == right
}

// LeftUnit reports whether identity(o);f resolves to f.
func LeftUnit(c Category, o category.Object, f category.Arrow) bool {
	id, err := c.Identity(o)
	if err != nil {
		return false
	}

	got, err := c.Compose(id, f)

	return err == nil && got == f
}

// RightUnit reports whether f;identity(o) resolves to f.
func RightUnit(c Category, o category.Object, f category.Arrow) bool {
	id, err := c.Identity(o)
	if err != nil {
		return false
	}

	got, err := c.Compose(f, id)

	return err == nil && got == f
}
