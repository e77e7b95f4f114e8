package encode

import "errors"

// errUnknownSchemaVariant fires for a nil Schema inside a hand-built schema
// (for example a nil element of AllOf). The other four fire only for a
// value of some other type that satisfies the sealed interface, such as a
// struct embedding one of the variants; a nil Type, Items,
// ExclusiveBoundary or ItemsPolicy is encoded as absent. Any Schema
// produced by decode.Decode always carries a concrete variant.
var (
	errUnknownSchemaVariant   = errors.New("encode: unrecognized Schema variant")
	errUnknownTypeVariant     = errors.New("encode: unrecognized Type variant")
	errUnknownBoundaryVariant = errors.New("encode: unrecognized ExclusiveBoundary variant")
	errUnknownItemsVariant    = errors.New("encode: unrecognized Items variant")
	errUnknownPolicyVariant   = errors.New("encode: unrecognized ItemsPolicy variant")
)
