package validate

import "github.com/sixdraft/schema6/format"

// Options is ValidationOptions from spec §6.
type Options struct {
	// ApplyDefaults fills missing object properties with their schema's
	// "default" into the returned copy of the instance. Default: false.
	ApplyDefaults bool

	// IgnoreRefSiblingKeywords makes "$ref" validate against the referent
	// alone, ignoring sibling keywords in the same subschema (draft-6
	// behavior). Default: true.
	IgnoreRefSiblingKeywords bool

	// EnabledFormats gates which named "format" checks are enforced. §4.5
	// names a default set of twelve format checkers the registry knows how
	// to run, but §6 is explicit that the option itself starts empty: a
	// caller opts a format in by name (see DESIGN.md). A disabled or
	// unrecognized format name is vacuously satisfied.
	EnabledFormats map[string]bool

	// MaxDepth bounds validation recursion. Default: 128.
	MaxDepth int

	// Formats is the registry consulted for enabled format checks.
	Formats *format.Registry
}

// DefaultOptions returns spec §6's default ValidationOptions.
func DefaultOptions() Options {
	return Options{
		ApplyDefaults:            false,
		IgnoreRefSiblingKeywords: true,
		EnabledFormats:           map[string]bool{},
		MaxDepth:                 128,
		Formats:                  format.Default(),
	}
}
