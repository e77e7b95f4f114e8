// Package model is the closed algebraic description of a draft-6 schema.
// It is pure data: nothing here parses JSON or validates instances. The
// sum types below are expressed as sealed interfaces (an unexported
// marker method) rather than as classes with runtime type tests, so a
// switch over the concrete type is exhaustive and the compiler flags new
// variants left unhandled.
package model

import "github.com/sixdraft/schema6/jsonvalue"

// Schema is one of BooleanSchema or ObjectSchema.
type Schema interface {
	isSchema()
}

// BooleanSchema is the draft-6 boolean schema form: true matches any
// value, false matches none.
type BooleanSchema bool

func (BooleanSchema) isSchema() {}

// ObjectSchema wraps the full keyword record.
type ObjectSchema struct {
	Sub *SubSchema
}

func (ObjectSchema) isSchema() {}

// Type is the closed sum AnyType | SingleType | NullableType | UnionType.
type Type interface {
	isType()
}

// AnyType represents an absent "type" keyword: any kind matches.
type AnyType struct{}

func (AnyType) isType() {}

// SingleType is a single named JSON type.
type SingleType struct{ Name string }

func (SingleType) isType() {}

// NullableType represents draft-6's `[t, "null"]` shorthand.
type NullableType struct{ Name string }

func (NullableType) isType() {}

// UnionType is ["t1", "t2", ...] for more than one non-null-paired type.
// Names is kept sorted for deterministic encoding and comparison.
type UnionType struct{ Names []string }

func (UnionType) isType() {}

// The seven draft-6 primitive type names.
const (
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeNull    = "null"
)

// KnownTypeNames lists the seven legal values for "type".
var KnownTypeNames = map[string]bool{
	TypeInteger: true,
	TypeNumber:  true,
	TypeString:  true,
	TypeBoolean: true,
	TypeObject:  true,
	TypeArray:   true,
	TypeNull:    true,
}

// Items is the closed sum NoItems | ItemDefinition | ArrayOfItems.
type Items interface {
	isItems()
}

// NoItems means the "items" keyword is absent.
type NoItems struct{}

func (NoItems) isItems() {}

// ItemDefinition means "items" held a single schema applied to every
// element.
type ItemDefinition struct{ Schema Schema }

func (ItemDefinition) isItems() {}

// ArrayOfItems means "items" held an array of per-position schemas
// (tuple validation).
type ArrayOfItems struct{ Schemas []Schema }

func (ArrayOfItems) isItems() {}

// Dependency is the closed sum PropSchema | ArrayPropNames, one value per
// entry in the "dependencies" keyword.
type Dependency interface {
	isDependency()
}

// PropSchema requires the whole instance to validate against Schema when
// the triggering property is present.
type PropSchema struct{ Schema Schema }

func (PropSchema) isDependency() {}

// ArrayPropNames requires every named property to also be present when
// the triggering property is present.
type ArrayPropNames struct{ Names []string }

func (ArrayPropNames) isDependency() {}

// DependencyEntry pairs a property name with its Dependency, preserving
// declaration order (spec §3: "dependencies preserves declaration order").
type DependencyEntry struct {
	Name string
	Dep  Dependency
}

// ExclusiveBoundary is the closed sum ExclusiveBool | ExclusiveNumber for
// exclusiveMaximum/exclusiveMinimum, which draft-6 accepts as either the
// legacy draft-4 boolean form or the draft-6 numeric form.
type ExclusiveBoundary interface {
	isExclusiveBoundary()
}

// ExclusiveBool is the draft-4 legacy form: true makes the corresponding
// inclusive bound (maximum/minimum) strict instead.
type ExclusiveBool bool

func (ExclusiveBool) isExclusiveBoundary() {}

// ExclusiveNumber is the draft-6 form: an independent strict bound.
type ExclusiveNumber float64

func (ExclusiveNumber) isExclusiveBoundary() {}

// ItemsPolicy is the closed sum used for "additionalItems" and
// "additionalProperties", both of which accept a bool or a schema.
type ItemsPolicy interface {
	isItemsPolicy()
}

// PolicyAllow means the keyword was explicitly true. An absent keyword
// leaves the field nil, which validation treats the same way.
type PolicyAllow struct{}

func (PolicyAllow) isItemsPolicy() {}

// PolicyDisallow means the keyword was explicitly false.
type PolicyDisallow struct{}

func (PolicyDisallow) isItemsPolicy() {}

// PolicySchema means the keyword held a schema that gates the values it
// applies to.
type PolicySchema struct{ Schema Schema }

func (PolicySchema) isItemsPolicy() {}

// PatternPropertyEntry pairs a regex source pattern with its schema,
// preserving declaration order.
type PatternPropertyEntry struct {
	Pattern string
	Schema  Schema
}

// SubSchema is the full draft-6 keyword record. Every field other than
// Source defaults to "absent": pointer fields are nil, slice/map fields
// are nil. The decoder sets an absent Type/Items to AnyType/NoItems; a
// nil Type or Items in a hand-built SubSchema is treated the same way by
// the validator and the encoder.
type SubSchema struct {
	// Source retains the original decoded JSON object, key order and all,
	// so the Encoder can round-trip unknown/custom keywords and the
	// IdCollector can re-walk the schema's raw shape.
	Source jsonvalue.Value

	Type Type

	ID  *string
	Ref *string

	Title       *string
	Description *string
	Default     *jsonvalue.Value
	Examples    []jsonvalue.Value
	Definitions map[string]Schema

	MultipleOf       *float64
	Maximum          *float64
	Minimum          *float64
	ExclusiveMaximum ExclusiveBoundary
	ExclusiveMinimum ExclusiveBoundary

	MaxLength *int
	MinLength *int
	Pattern   *string
	Format    *string

	Items           Items
	AdditionalItems ItemsPolicy
	MaxItems        *int
	MinItems        *int
	UniqueItems     *bool
	Contains        Schema

	MaxProperties        *int
	MinProperties        *int
	Required             []string
	Properties           map[string]Schema
	PatternProperties    []PatternPropertyEntry
	AdditionalProperties ItemsPolicy
	Dependencies         []DependencyEntry
	PropertyNames        Schema

	Enum  []jsonvalue.Value
	Const *jsonvalue.Value
	AllOf []Schema
	AnyOf []Schema
	OneOf []Schema
	Not   Schema
}
