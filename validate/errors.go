package validate

import "fmt"

// Kind is the closed ValidationError enumeration from spec §7.
type Kind int

const (
	AlwaysFail Kind = iota
	InvalidType
	Required
	NotInEnum
	NotConst
	MultipleOf
	Maximum
	ExclusiveMaximum
	Minimum
	ExclusiveMinimum
	MaxLength
	MinLength
	Pattern
	Format
	MaxItems
	MinItems
	NotUnique
	Contains
	MaxProperties
	MinProperties
	AdditionalPropertiesDisallowed
	AdditionalItemsDisallowed
	PropertyNames
	InvalidDependency
	AllOfFailed
	AnyOfFailed
	OneOfNoneMatch
	OneOfManyMatch
	NotDisallowed
	UnresolvableReference
	RecursionLimit
)

func (k Kind) String() string {
	names := [...]string{
		"always_fail", "invalid_type", "required", "not_in_enum", "not_const",
		"multiple_of", "maximum", "exclusive_maximum", "minimum", "exclusive_minimum",
		"max_length", "min_length", "pattern", "format", "max_items", "min_items",
		"not_unique", "contains", "max_properties", "min_properties",
		"additional_properties_disallowed", "additional_items_disallowed",
		"property_names", "invalid_dependency", "all_of_failed", "any_of_failed",
		"one_of_none_match", "one_of_many_match", "not_disallowed",
		"unresolvable_reference", "recursion_limit",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Error is a single validation failure at a specific instance location.
// Not every field is populated for every Kind: ExpectedType/ActualType
// for InvalidType; MissingKey for Required and
// AdditionalPropertiesDisallowed; FormatName for Format; IndexA for
// AdditionalItemsDisallowed, and IndexA/IndexB for NotUnique; BranchIndex
// for AllOfFailed; Indices for OneOfManyMatch; Ref for
// UnresolvableReference; Inner for AllOfFailed, AnyOfFailed and
// PropertyNames.
type Error struct {
	Pointer string // JSON Pointer into the instance, "" for the root
	Keyword string
	Kind    Kind

	ExpectedType string
	ActualType   string
	MissingKey   string
	FormatName   string
	IndexA       int
	IndexB       int
	BranchIndex  int
	Indices      []int
	Ref          string
	Inner        []*Error
}

func (e *Error) Error() string {
	if e.Pointer == "" {
		return fmt.Sprintf("%s: %s", e.Keyword, e.Kind)
	}
	return fmt.Sprintf("%s at %s: %s", e.Keyword, e.Pointer, e.Kind)
}
