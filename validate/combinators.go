package validate

import (
	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
)

func (ctx *context) validateCombinators(sub *model.SubSchema, instance jsonvalue.Value, ptr, ns string, depth int) []*Error {
	var errs []*Error

	for i, s := range sub.AllOf {
		_, aerrs := ctx.validate(s, instance, ptr, ns, depth+1)
		if len(aerrs) > 0 {
			errs = append(errs, &Error{Kind: AllOfFailed, Pointer: ptr, Keyword: "allOf", BranchIndex: i, Inner: aerrs})
		}
	}

	if sub.AnyOf != nil {
		var branchErrs []*Error
		matched := false
		for _, s := range sub.AnyOf {
			_, aerrs := ctx.validate(s, instance, ptr, ns, depth+1)
			if len(aerrs) == 0 {
				matched = true
				break
			}
			branchErrs = append(branchErrs, aerrs...)
		}
		if !matched {
			errs = append(errs, &Error{Kind: AnyOfFailed, Pointer: ptr, Keyword: "anyOf", Inner: branchErrs})
		}
	}

	if sub.OneOf != nil {
		var matches []int
		for i, s := range sub.OneOf {
			_, oerrs := ctx.validate(s, instance, ptr, ns, depth+1)
			if len(oerrs) == 0 {
				matches = append(matches, i)
			}
		}
		switch len(matches) {
		case 0:
			errs = append(errs, &Error{Kind: OneOfNoneMatch, Pointer: ptr, Keyword: "oneOf"})
		case 1:
			// exactly one branch matched: satisfied
		default:
			errs = append(errs, &Error{Kind: OneOfManyMatch, Pointer: ptr, Keyword: "oneOf", Indices: matches})
		}
	}

	if sub.Not != nil {
		_, nerrs := ctx.validate(sub.Not, instance, ptr, ns, depth+1)
		if len(nerrs) == 0 {
			errs = append(errs, &Error{Kind: NotDisallowed, Pointer: ptr, Keyword: "not"})
		}
	}

	return errs
}
