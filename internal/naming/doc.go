// Package naming tokenizes arrow names and scores their similarity.
//
// Attribute arrows are usually named like record fields ("first_name",
// "lastName", "HomeAddress"), so classifiers work on the lower-case tokens
// of a name rather than on raw strings.
package naming
