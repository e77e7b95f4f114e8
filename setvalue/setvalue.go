// Package setvalue is the auxiliary write-path utility spec §9 calls for:
// locate the subschema at a JSON pointer, resolving "$ref" and picking the
// first "anyOf"/"oneOf" branch whose type matches the value being placed,
// then place the value at that pointer, creating intermediate objects or
// arrays as dictated by the schema type. It is not part of the validator;
// it exists for callers building up an instance guided by a schema.
package setvalue

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
	"github.com/sixdraft/schema6/refs"
)

// Locate walks schema along path (instance-pointer segments, e.g.
// ["a","0","b"]), resolving "$ref" and ambiguous anyOf/oneOf branches
// against v's kind at every step, and returns the subschema found there.
func Locate(pool *refs.Pool, ns string, schema model.Schema, path []string, v jsonvalue.Value) (model.Schema, error) {
	cur := resolveSchemaChain(schema, pool, ns, v)
	for _, seg := range path {
		cur = stepSchema(cur, seg)
		cur = resolveSchemaChain(cur, pool, ns, v)
	}
	return cur, nil
}

// Place sets v at path within target, guided by schema: at each segment it
// picks array-vs-object shape from the subschema's declared type (falling
// back to "array" when the segment itself is numeric), creating any
// missing intermediate containers along the way.
func Place(pool *refs.Pool, ns string, schema model.Schema, path []string, v jsonvalue.Value, target jsonvalue.Value) (jsonvalue.Value, error) {
	return place(pool, ns, schema, path, v, target)
}

func place(pool *refs.Pool, ns string, schema model.Schema, path []string, v jsonvalue.Value, cur jsonvalue.Value) (jsonvalue.Value, error) {
	if len(path) == 0 {
		return v, nil
	}

	resolved := resolveSchemaChain(schema, pool, ns, v)
	seg := path[0]
	rest := path[1:]

	idx, isIndexSeg := pointer.IndexSegment(seg)
	wantArray := isIndexSeg
	if obj, ok := resolved.(model.ObjectSchema); ok {
		switch t := obj.Sub.Type.(type) {
		case model.SingleType:
			wantArray = t.Name == model.TypeArray
		case model.NullableType:
			wantArray = t.Name == model.TypeArray
		}
	}

	childSchema := stepSchema(resolved, seg)

	if wantArray {
		if !isIndexSeg {
			return jsonvalue.Value{}, fmt.Errorf("setvalue: segment %q is not a valid array index", seg)
		}
		var arr []jsonvalue.Value
		if cur.Kind() == jsonvalue.KindArray {
			arr = append(arr, cur.Array()...)
		}
		for len(arr) <= idx {
			arr = append(arr, jsonvalue.Null())
		}
		placed, err := place(pool, ns, childSchema, rest, v, arr[idx])
		if err != nil {
			return jsonvalue.Value{}, err
		}
		arr[idx] = placed
		return jsonvalue.Arr(arr), nil
	}

	var o *jsonvalue.Object
	if cur.Kind() == jsonvalue.KindObject {
		o = cur.Object().Clone()
	} else {
		o = jsonvalue.NewObject()
	}
	existing, _ := o.Get(seg)
	placed, err := place(pool, ns, childSchema, rest, v, existing)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	o.Set(seg, placed)
	return jsonvalue.Obj(o), nil
}

// resolveSchemaChain follows "$ref" and, for a schema whose only means of
// constraining the value is an anyOf/oneOf list, picks the first branch
// whose declared type matches v's kind.
func resolveSchemaChain(schema model.Schema, pool *refs.Pool, ns string, v jsonvalue.Value) model.Schema {
	cur := schema
	for i := 0; i < 64; i++ { // bounded: a well-formed pool has no unbroken $ref cycles reachable without instance descent
		obj, ok := cur.(model.ObjectSchema)
		if !ok {
			return cur
		}
		sub := obj.Sub
		if sub.Ref != nil {
			resolved, err := refs.ResolveRef(pool, ns, *sub.Ref)
			if err != nil {
				return cur
			}
			cur = resolved
			continue
		}
		_, hasType := sub.Type.(model.AnyType)
		_, noItems := sub.Items.(model.NoItems)
		if (sub.Type == nil || hasType) && sub.Properties == nil && (sub.Items == nil || noItems) {
			if branch := pickBranch(sub.AnyOf, v); branch != nil {
				cur = branch
				continue
			}
			if branch := pickBranch(sub.OneOf, v); branch != nil {
				cur = branch
				continue
			}
		}
		return cur
	}
	return cur
}

func pickBranch(branches []model.Schema, v jsonvalue.Value) model.Schema {
	for _, b := range branches {
		obj, ok := b.(model.ObjectSchema)
		if !ok {
			continue
		}
		if typeAccepts(obj.Sub.Type, v) {
			return b
		}
	}
	return nil
}

func typeAccepts(t model.Type, v jsonvalue.Value) bool {
	switch ty := t.(type) {
	case nil, model.AnyType:
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
		return false
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
	case model.TypeNumber, model.TypeInteger:
		return v.Kind() == jsonvalue.KindNumber
	default:
		return false
	}
}

// stepSchema advances one path segment into schema, choosing among
// properties, patternProperties, additionalProperties, and items as the
// segment's shape (name vs. numeric index) dictates. An unconstrained
// result is BooleanSchema(true): no keyword bears on this position.
func stepSchema(schema model.Schema, seg string) model.Schema {
	obj, ok := schema.(model.ObjectSchema)
	if !ok {
		return schema
	}
	sub := obj.Sub

	if idx, ok := pointer.IndexSegment(seg); ok {
		switch it := sub.Items.(type) {
		case model.ItemDefinition:
			return it.Schema
		case model.ArrayOfItems:
			if idx < len(it.Schemas) {
				return it.Schemas[idx]
			}
			if ps, ok := sub.AdditionalItems.(model.PolicySchema); ok {
				return ps.Schema
			}
			if _, ok := sub.AdditionalItems.(model.PolicyDisallow); ok {
				return model.BooleanSchema(false)
			}
		}
		return model.BooleanSchema(true)
	}

	if child, ok := sub.Properties[seg]; ok {
		return child
	}
	for _, entry := range sub.PatternProperties {
		if regexMatches(entry.Pattern, seg) {
			return entry.Schema
		}
	}
	switch ap := sub.AdditionalProperties.(type) {
	case model.PolicySchema:
		return ap.Schema
	case model.PolicyDisallow:
		return model.BooleanSchema(false)
	}
	return model.BooleanSchema(true)
}

func regexMatches(pattern, s string) bool {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return false
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}
