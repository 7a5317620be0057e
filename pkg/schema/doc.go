// Package schema declares form fields and validates values against them.
//
// A FormSchema is an ordered, immutable list of FieldSchema values. Each field
// carries a Required flag and a list of Constraint variants (email, min_length,
// max_length, pattern). Validation is a pure function of the declaration and
// the input: the required check runs first, then constraints in declaration
// order, and the first failing message wins.
//
// Schemas can be built in code:
//
//	login := schema.MustNew("login",
//	    schema.Email("email").Email("E-mail inválido").Required("Campo obrigatório").Build(),
//	    schema.Password("password").MinLength(6, "No mínimo 6 caracteres").Required("Campo obrigatório").Build(),
//	)
//
// or decoded from YAML/JSON declarations with DecodeYAML, DecodeJSON and LoadFile.
//
// Empty messages fall back to the English defaults from the validator package.
// Localize fills them from a translator instead.
package schema
