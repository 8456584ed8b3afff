// Package declare builds wrapkit kinds from YAML declarations.
//
// A declaration names a kind, lists its sanitization steps in order, gives
// a validation rule tree, and enables capability tags. Because YAML is a
// superset of JSON, declarations may also be written as JSON documents.
//
// # Architecture
//
// A Registry maps step and rule names to factories. A factory receives the
// raw argument node from the document and returns a wrapkit transform or
// check, so arguments are decoded and verified once, when the kind is
// defined, never per value. Registries start empty; Strings, Ints, and
// Floats return registries preloaded with the sanitizer and validator
// catalogs for those inner types. Parse reads a standalone document and
// ParseNode accepts a decoded node, for declarations embedded inside a
// larger configuration file.
//
// The rule tree mirrors the engine's combinators. The names "all", "any",
// "not", and "when" are reserved:
//
//	validate:
//	  all:
//	    - alphanumeric
//	    - chars: {min: 5, max: 20}
//	    - not:
//	        prefix: "_"
//
// A bare sequence is shorthand for "all". A "when" rule takes "if" and
// "then" branches and passes values that fail the "if" branch outright.
//
// # Usage
//
//	reg := declare.Strings()
//	kind, err := reg.Parse([]byte(`
//	name: username
//	sanitize:
//	  - trim
//	  - lower
//	validate:
//	  - alphanumeric
//	  - chars: {min: 5, max: 20}
//	upgrades: [display, json]
//	`))
//
// # Error Handling
//
// Parse reports the first problem it finds: malformed documents wrap
// ErrInvalidDocument, unknown names wrap ErrUnknownTransform or
// ErrUnknownCheck, and bad arguments wrap ErrInvalidArgs. Errors from
// kind definition itself pass through from the engine untouched.
package declare
