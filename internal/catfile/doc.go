// Package catfile reads and writes declarative category descriptions.
//
// A description file has the following structure:
//
//	version: "1"
//	name: people
//	objects: [Person, String, Integer]
//	arrows:
//	  # shorthand: one key, "domain -> codomain"
//	  - first_name: Person -> String
//	  - last_name: Person -> String
//	  - age: Person -> Integer
//	  # full form, with declared composites
//	  - name: id_Person
//	    domain: Person
//	    codomain: Person
//	    equals:
//	      - id_Person;id_Person
//	      - [id_Person, id_Person]
//	splits:
//	  - object: Person
//	    strategy: rules        # rules | token | similarity
//	    rules:
//	      - group: name
//	        contains: name
//	    fallback: age
//	    identities: false
//
// An equals entry "f;g" (or the list [f, g]) declares that the arrow is the
// composite of f followed by g.
package catfile
