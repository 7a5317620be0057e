package schema

import "regexp"

// Builder declares a field fluently:
//
//	schema.Field("email", schema.TypeEmail).
//	    Email("E-mail inválido").
//	    Required("Campo obrigatório").
//	    Build()
//
// Required may be called anywhere in the chain; it is always checked first.
type Builder struct {
	f FieldSchema
}

// Field starts a declaration for a field of the given type.
func Field(name string, typ FieldType) *Builder {
	return &Builder{f: FieldSchema{Name: name, Type: typ}}
}

// String, Email and Password are shorthands for Field with the matching type.
func String(name string) *Builder   { return Field(name, TypeString) }
func Email(name string) *Builder    { return Field(name, TypeEmail) }
func Password(name string) *Builder { return Field(name, TypePassword) }

func (b *Builder) Label(label string) *Builder {
	b.f.Label = label
	return b
}

func (b *Builder) Placeholder(p string) *Builder {
	b.f.Placeholder = p
	return b
}

func (b *Builder) Default(v string) *Builder {
	b.f.Default = v
	return b
}

// Required marks the field required. An empty msg keeps the default message.
func (b *Builder) Required(msg string) *Builder {
	b.f.Required = true
	b.f.RequiredMessage = msg
	return b
}

func (b *Builder) Email(msg string) *Builder {
	return b.add(Constraint{Kind: KindEmail, Message: msg})
}

func (b *Builder) MinLength(n int, msg string) *Builder {
	return b.add(Constraint{Kind: KindMinLength, Min: n, Message: msg})
}

func (b *Builder) MaxLength(n int, msg string) *Builder {
	return b.add(Constraint{Kind: KindMaxLength, Max: n, Message: msg})
}

// Pattern panics if expr does not compile. Use a FieldSchema literal with a
// precompiled regexp when the expression is not a constant.
func (b *Builder) Pattern(expr, description, msg string) *Builder {
	return b.add(Constraint{
		Kind:        KindPattern,
		Pattern:     regexp.MustCompile(expr),
		Description: description,
		Message:     msg,
	})
}

func (b *Builder) add(c Constraint) *Builder {
	b.f.Constraints = append(b.f.Constraints, c)
	return b
}

// Build returns the declared field.
func (b *Builder) Build() FieldSchema {
	f := b.f
	f.Constraints = append([]Constraint(nil), b.f.Constraints...)
	return f
}
