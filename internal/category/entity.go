package category

// Object is a named node of a category. Objects compare by name.
type Object struct {
	name string
}

// NewObject returns an object with the given name.
func NewObject(name string) Object {
	return Object{name: name}
}

// Objects is a shorthand for building an object list from names.
func Objects(names ...string) []Object {
	out := make([]Object, len(names))
	for i, n := range names {
		out[i] = NewObject(n)
	}

	return out
}

// Name returns the object name.
func (o Object) Name() string { return o.name }

func (o Object) String() string { return o.name }

// Pair is a declared composite by arrow position: the owning arrow equals
// Before followed by After.
type Pair struct {
	Before, After int
}

// NamePair is the by-name form of Pair used when building a category.
type NamePair struct {
	Before, After string
}

// ArrowSpec describes one arrow for Build.
type ArrowSpec struct {
	Name     string
	Domain   string
	Codomain string
	// Equals lists the composites this arrow is declared equal to.
	Equals []NamePair
}

// Arrow is a handle to an arrow owned by a Category. Two handles are equal
// when they address the same position of the same category. The zero Arrow
// belongs to no category.
type Arrow struct {
	owner *Category
	index int
}

// Name returns the arrow name, or "" for an arrow that belongs to no category.
func (a Arrow) Name() string {
	if a.owner == nil {
		return ""
	}

	return a.owner.arrows[a.index].name
}

// Index returns the arrow position within its category.
func (a Arrow) Index() int { return a.index }

// Declared returns a copy of the arrow's equals table.
func (a Arrow) Declared() []Pair {
	if a.owner == nil {
		return nil
	}

	eq := a.owner.arrows[a.index].equals
	out := make([]Pair, len(eq))
	copy(out, eq)

	return out
}

func (a Arrow) String() string {
	if a.owner == nil {
		return "<detached arrow>"
	}

	rec := a.owner.arrows[a.index]

	return a.owner.renderArrow(rec)
}

// arrowRecord is the stored form of an arrow.
type arrowRecord struct {
	name     string
	domain   int
	codomain int
	equals   []Pair
}
