// Package validate is the engine's validator: it interprets a model.Schema
// against a jsonvalue.Value instance and returns either the (possibly
// defaults-filled) instance, or an ordered list of structured Errors. It
// never short-circuits on the first failure and never mutates its inputs.
package validate

import (
	"math/big"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
	"github.com/sixdraft/schema6/refs"
)

type context struct {
	opts         Options
	pool         *refs.Pool
	seen         map[string]bool
	patternCache map[string]*regexp2.Regexp
}

// Validate is the engine's single entry point, matching spec §4.5's
// validate(options, pool, instance, rootSchema, currentSchema) — rootNS is
// the namespace refs.CollectIds(rootSchema) returned, threaded so relative
// "$ref"s resolve against the right base as validation descends.
func Validate(opts Options, pool *refs.Pool, rootNS string, instance jsonvalue.Value, schema model.Schema) (jsonvalue.Value, []*Error) {
	ctx := &context{opts: opts, pool: pool, seen: map[string]bool{}, patternCache: map[string]*regexp2.Regexp{}}
	out, errs := ctx.validate(schema, instance, "", rootNS, 0)
	return out, errs
}

// ValidateSchema is a convenience wrapper that collects the schema's own
// id pool before validating, for callers with no pre-existing pool (e.g. a
// schema with no external $refs to pre-load).
func ValidateSchema(opts Options, instance jsonvalue.Value, schema model.Schema) (jsonvalue.Value, []*Error) {
	pool, ns := refs.CollectIds(schema)
	return Validate(opts, pool, ns, instance, schema)
}

func (ctx *context) validate(schema model.Schema, instance jsonvalue.Value, ptr, ns string, depth int) (jsonvalue.Value, []*Error) {
	if depth > ctx.opts.MaxDepth {
		return instance, []*Error{{Kind: RecursionLimit, Pointer: ptr}}
	}
	switch s := schema.(type) {
	case model.BooleanSchema:
		if bool(s) {
			return instance, nil
		}
		return instance, []*Error{{Kind: AlwaysFail, Pointer: ptr}}
	case model.ObjectSchema:
		return ctx.validateObject(s.Sub, instance, ptr, ns, depth)
	default:
		return instance, nil
	}
}

func (ctx *context) validateObject(sub *model.SubSchema, instance jsonvalue.Value, ptr, ns string, depth int) (jsonvalue.Value, []*Error) {
	ownNS := ns
	if sub.ID != nil {
		ownNS = pointer.Parse(*sub.ID, ns).Namespace
	}

	if sub.Ref != nil {
		out, errs := ctx.validateRef(sub, instance, ptr, ownNS, depth)
		if ctx.opts.IgnoreRefSiblingKeywords {
			return out, errs
		}
		siblingOut, siblingErrs := ctx.validateSiblings(sub, out, ptr, ownNS, depth)
		return siblingOut, append(errs, siblingErrs...)
	}

	return ctx.validateSiblings(sub, instance, ptr, ownNS, depth)
}

func (ctx *context) validateRef(sub *model.SubSchema, instance jsonvalue.Value, ptr, ns string, depth int) (jsonvalue.Value, []*Error) {
	resolved, err := refs.ResolveRef(ctx.pool, ns, *sub.Ref)
	if err != nil {
		return instance, []*Error{{Kind: UnresolvableReference, Pointer: ptr, Keyword: "$ref", Ref: *sub.Ref}}
	}

	cycleKey := pointer.Key(*sub.Ref, ns) + "|" + ptr
	if ctx.seen[cycleKey] {
		return instance, nil
	}
	ctx.seen[cycleKey] = true
	return ctx.validate(resolved, instance, ptr, ns, depth+1)
}

// validateSiblings applies every non-$ref keyword group in the stable
// order spec §4.5 mandates: type, generic (enum/const), kind-specific,
// combinators.
func (ctx *context) validateSiblings(sub *model.SubSchema, instance jsonvalue.Value, ptr, ns string, depth int) (jsonvalue.Value, []*Error) {
	var errs []*Error

	if sub.Type != nil {
		if !typeMatches(sub.Type, instance) {
			errs = append(errs, &Error{
				Kind: InvalidType, Pointer: ptr, Keyword: "type",
				ExpectedType: typeName(sub.Type), ActualType: instance.Kind().String(),
			})
		}
	}

	if sub.Enum != nil && !enumContains(sub.Enum, instance) {
		errs = append(errs, &Error{Kind: NotInEnum, Pointer: ptr, Keyword: "enum"})
	}
	if sub.Const != nil && !jsonvalue.Equal(*sub.Const, instance) {
		errs = append(errs, &Error{Kind: NotConst, Pointer: ptr, Keyword: "const"})
	}

	out := instance
	switch instance.Kind() {
	case jsonvalue.KindNumber:
		errs = append(errs, ctx.validateNumeric(sub, instance, ptr)...)
	case jsonvalue.KindString:
		errs = append(errs, ctx.validateString(sub, instance, ptr)...)
	case jsonvalue.KindArray:
		var aerrs []*Error
		out, aerrs = ctx.validateArray(sub, instance, ptr, ns, depth)
		errs = append(errs, aerrs...)
	case jsonvalue.KindObject:
		var oerrs []*Error
		out, oerrs = ctx.validateObjectKeywords(sub, instance, ptr, ns, depth)
		errs = append(errs, oerrs...)
	}

	errs = append(errs, ctx.validateCombinators(sub, out, ptr, ns, depth)...)
	return out, errs
}

func typeMatches(t model.Type, v jsonvalue.Value) bool {
	switch ty := t.(type) {
	case model.AnyType:
		return true
	case model.SingleType:
		return kindMatchesTypeName(ty.Name, v)
	case model.NullableType:
		return v.IsNull() || kindMatchesTypeName(ty.Name, v)
	case model.UnionType:
		for _, n := range ty.Names {
			if kindMatchesTypeName(n, v) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func kindMatchesTypeName(name string, v jsonvalue.Value) bool {
	switch name {
	case model.TypeNull:
		return v.IsNull()
	case model.TypeBoolean:
		return v.Kind() == jsonvalue.KindBool
	case model.TypeString:
		return v.Kind() == jsonvalue.KindString
	case model.TypeArray:
		return v.Kind() == jsonvalue.KindArray
	case model.TypeObject:
		return v.Kind() == jsonvalue.KindObject
	case model.TypeNumber:
		return v.Kind() == jsonvalue.KindNumber
	case model.TypeInteger:
		return v.Kind() == jsonvalue.KindNumber && isIntegerNumber(v)
	default:
		return false
	}
}

func isIntegerNumber(v jsonvalue.Value) bool {
	r, ok := new(big.Rat).SetString(v.Number().String())
	return ok && r.IsInt()
}

func typeName(t model.Type) string {
	switch ty := t.(type) {
	case model.AnyType:
		return "any"
	case model.SingleType:
		return ty.Name
	case model.NullableType:
		return ty.Name + "|null"
	case model.UnionType:
		out := ""
		for i, n := range ty.Names {
			if i > 0 {
				out += "|"
			}
			out += n
		}
		return out
	default:
		return ""
	}
}

func enumContains(enum []jsonvalue.Value, v jsonvalue.Value) bool {
	for _, e := range enum {
		if jsonvalue.Equal(e, v) {
			return true
		}
	}
	return false
}

func numToFloat(v jsonvalue.Value) float64 {
	f, _ := strconv.ParseFloat(v.Number().String(), 64)
	return f
}
