// Package category models small finite categories.
//
// A Category owns a flat list of objects and a flat list of arrows. Arrows
// refer to their domain, codomain and declared composites by position, so a
// category is an arena addressed by index and never holds pointers into
// itself.
//
// # Composition
//
// Composition is data, not derivation. The store only knows that f;g exists
// when some arrow lists the pair (f, g) in its equals table:
//
//	objects: [X Y Z]
//	arrows:
//	  f: X -> Y
//	  g: Y -> Z
//	  h: X -> Z   equals f;g
//
// Compose(f, g) yields h. No transitive closure is computed.
//
// # Identities
//
// The identity of an object is the unique arrow whose domain and codomain
// are both that object. Build rejects two such arrows for one object
// (AmbiguousIdentity); a missing identity is reported by Identity
// (NoIdentity).
//
// A Category is immutable after Build and safe for concurrent readers.
package category
