// Package split decomposes a record object into sub-categories.
//
// Given a category and a distinguished "table" object T, the outgoing
// attribute arrows of T (domain T, codomain not T) are bucketed by a
// Classifier. Each bucket becomes an independent category holding T, the
// codomains of its arrows, and the arrows themselves:
//
//	Person: first_name, last_name -> String; age -> Integer
//	  name: objects [Person String], arrows [first_name last_name]
//	  age:  objects [Person Integer], arrows [age]
//
// Equality declarations are not carried into the pieces. By default the
// pieces carry no identity arrows either, so Identity on a piece reports
// NoIdentity; WithIdentities carries or synthesizes them.
package split
