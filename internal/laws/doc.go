// Package laws checks the category laws against declared composition.
//
// The predicates never fail loudly: a composite that is undeclared or does
// not type-check makes the law evaluate to false. Verify walks a whole
// category and reports each breach as a diagnostic.
package laws
