package validate

import (
	"math"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
)

// multipleOfTolerance bounds the floating-point slack allowed when
// checking x is an integer multiple of m, per spec §4.5.
const multipleOfTolerance = 1e-9

func (ctx *context) validateNumeric(sub *model.SubSchema, instance jsonvalue.Value, ptr string) []*Error {
	x := numToFloat(instance)
	var errs []*Error

	if sub.MultipleOf != nil {
		m := *sub.MultipleOf
		q := math.Round(x / m)
		if math.Abs(q*m-x) > multipleOfTolerance*math.Max(math.Abs(x), math.Abs(m)) {
			errs = append(errs, &Error{Kind: MultipleOf, Pointer: ptr, Keyword: "multipleOf"})
		}
	}

	if sub.Maximum != nil {
		strict := exclusiveBoolTrue(sub.ExclusiveMaximum)
		if (strict && x >= *sub.Maximum) || (!strict && x > *sub.Maximum) {
			errs = append(errs, &Error{Kind: Maximum, Pointer: ptr, Keyword: "maximum"})
		}
	}
	if en, ok := sub.ExclusiveMaximum.(model.ExclusiveNumber); ok && x >= float64(en) {
		errs = append(errs, &Error{Kind: ExclusiveMaximum, Pointer: ptr, Keyword: "exclusiveMaximum"})
	}

	if sub.Minimum != nil {
		strict := exclusiveBoolTrue(sub.ExclusiveMinimum)
		if (strict && x <= *sub.Minimum) || (!strict && x < *sub.Minimum) {
			errs = append(errs, &Error{Kind: Minimum, Pointer: ptr, Keyword: "minimum"})
		}
	}
	if en, ok := sub.ExclusiveMinimum.(model.ExclusiveNumber); ok && x <= float64(en) {
		errs = append(errs, &Error{Kind: ExclusiveMinimum, Pointer: ptr, Keyword: "exclusiveMinimum"})
	}

	return errs
}

func exclusiveBoolTrue(b model.ExclusiveBoundary) bool {
	eb, ok := b.(model.ExclusiveBool)
	return ok && bool(eb)
}
