// Package encode is the inverse of decode: it renders a model.Schema back
// into a jsonvalue.Value. It starts from each SubSchema's retained Source
// so unknown/custom keywords survive the round trip, then overwrites the
// typed keywords with their current values so programmatic mutations take
// effect, per spec §4.2.
package encode

import (
	"sort"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
)

// Encode renders s back into a generic JSON value.
func Encode(s model.Schema) (jsonvalue.Value, error) {
	switch v := s.(type) {
	case model.BooleanSchema:
		return jsonvalue.Bool(bool(v)), nil
	case model.ObjectSchema:
		return encodeObject(v.Sub)
	default:
		return jsonvalue.Value{}, errUnknownSchemaVariant
	}
}

func encodeObject(sub *model.SubSchema) (jsonvalue.Value, error) {
	base := cloneSourceObject(sub.Source)

	if t, err := encodeType(sub.Type); err != nil {
		return jsonvalue.Value{}, err
	} else if t != nil {
		base.Set("type", *t)
	}

	setOptString(base, "$id", sub.ID)
	setOptString(base, "$ref", sub.Ref)
	setOptString(base, "title", sub.Title)
	setOptString(base, "description", sub.Description)
	setOptString(base, "pattern", sub.Pattern)
	setOptString(base, "format", sub.Format)

	if sub.Default != nil {
		base.Set("default", *sub.Default)
	}
	if sub.Examples != nil {
		base.Set("examples", jsonvalue.Arr(sub.Examples))
	}

	if sub.Definitions != nil {
		v, err := encodeOrderedSchemaMap(sub.Source, "definitions", sub.Definitions)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("definitions", v)
	}

	setOptFloat(base, "multipleOf", sub.MultipleOf)
	setOptFloat(base, "maximum", sub.Maximum)
	setOptFloat(base, "minimum", sub.Minimum)

	if sub.ExclusiveMaximum != nil {
		v, err := encodeExclusiveBoundary(sub.ExclusiveMaximum)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("exclusiveMaximum", v)
	}
	if sub.ExclusiveMinimum != nil {
		v, err := encodeExclusiveBoundary(sub.ExclusiveMinimum)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("exclusiveMinimum", v)
	}

	setOptInt(base, "maxLength", sub.MaxLength)
	setOptInt(base, "minLength", sub.MinLength)
	setOptInt(base, "maxItems", sub.MaxItems)
	setOptInt(base, "minItems", sub.MinItems)
	setOptInt(base, "maxProperties", sub.MaxProperties)
	setOptInt(base, "minProperties", sub.MinProperties)

	if sub.Items != nil {
		if _, ok := sub.Items.(model.NoItems); !ok {
			v, err := encodeItems(sub.Items)
			if err != nil {
				return jsonvalue.Value{}, err
			}
			base.Set("items", v)
		}
	}

	if sub.AdditionalItems != nil {
		v, err := encodePolicy(sub.AdditionalItems)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("additionalItems", v)
	}

	if sub.UniqueItems != nil {
		base.Set("uniqueItems", jsonvalue.Bool(*sub.UniqueItems))
	}

	if sub.Contains != nil {
		v, err := Encode(sub.Contains)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("contains", v)
	}

	if sub.Required != nil {
		items := make([]jsonvalue.Value, len(sub.Required))
		for i, r := range sub.Required {
			items[i] = jsonvalue.String(r)
		}
		base.Set("required", jsonvalue.Arr(items))
	}

	if sub.Properties != nil {
		v, err := encodeOrderedSchemaMap(sub.Source, "properties", sub.Properties)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("properties", v)
	}

	if sub.PatternProperties != nil {
		obj := jsonvalue.NewObject()
		for _, e := range sub.PatternProperties {
			v, err := Encode(e.Schema)
			if err != nil {
				return jsonvalue.Value{}, err
			}
			obj.Set(e.Pattern, v)
		}
		base.Set("patternProperties", jsonvalue.Obj(obj))
	}

	if sub.AdditionalProperties != nil {
		v, err := encodePolicy(sub.AdditionalProperties)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("additionalProperties", v)
	}

	if sub.Dependencies != nil {
		obj := jsonvalue.NewObject()
		for _, e := range sub.Dependencies {
			switch d := e.Dep.(type) {
			case model.ArrayPropNames:
				items := make([]jsonvalue.Value, len(d.Names))
				for i, n := range d.Names {
					items[i] = jsonvalue.String(n)
				}
				obj.Set(e.Name, jsonvalue.Arr(items))
			case model.PropSchema:
				v, err := Encode(d.Schema)
				if err != nil {
					return jsonvalue.Value{}, err
				}
				obj.Set(e.Name, v)
			}
		}
		base.Set("dependencies", jsonvalue.Obj(obj))
	}

	if sub.PropertyNames != nil {
		v, err := Encode(sub.PropertyNames)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("propertyNames", v)
	}

	if sub.Enum != nil {
		base.Set("enum", jsonvalue.Arr(sub.Enum))
	}
	if sub.Const != nil {
		base.Set("const", *sub.Const)
	}

	if sub.AllOf != nil {
		v, err := encodeSchemaList(sub.AllOf)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("allOf", v)
	}
	if sub.AnyOf != nil {
		v, err := encodeSchemaList(sub.AnyOf)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("anyOf", v)
	}
	if sub.OneOf != nil {
		v, err := encodeSchemaList(sub.OneOf)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("oneOf", v)
	}
	if sub.Not != nil {
		v, err := Encode(sub.Not)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		base.Set("not", v)
	}

	return jsonvalue.Obj(base), nil
}

func cloneSourceObject(src jsonvalue.Value) *jsonvalue.Object {
	if src.Kind() == jsonvalue.KindObject {
		return src.Object().Clone()
	}
	return jsonvalue.NewObject()
}

func setOptString(obj *jsonvalue.Object, key string, s *string) {
	if s != nil {
		obj.Set(key, jsonvalue.String(*s))
	}
}

func setOptFloat(obj *jsonvalue.Object, key string, f *float64) {
	if f != nil {
		obj.Set(key, jsonvalue.NumberFromFloat(*f))
	}
}

func setOptInt(obj *jsonvalue.Object, key string, n *int) {
	if n != nil {
		obj.Set(key, jsonvalue.NumberFromFloat(float64(*n)))
	}
}

func encodeType(t model.Type) (*jsonvalue.Value, error) {
	switch ty := t.(type) {
	case nil, model.AnyType:
		return nil, nil
	case model.SingleType:
		v := jsonvalue.String(ty.Name)
		return &v, nil
	case model.NullableType:
		v := jsonvalue.Arr([]jsonvalue.Value{jsonvalue.String(ty.Name), jsonvalue.String(model.TypeNull)})
		return &v, nil
	case model.UnionType:
		items := make([]jsonvalue.Value, len(ty.Names))
		for i, n := range ty.Names {
			items[i] = jsonvalue.String(n)
		}
		v := jsonvalue.Arr(items)
		return &v, nil
	default:
		return nil, errUnknownTypeVariant
	}
}

func encodeExclusiveBoundary(b model.ExclusiveBoundary) (jsonvalue.Value, error) {
	switch v := b.(type) {
	case model.ExclusiveBool:
		return jsonvalue.Bool(bool(v)), nil
	case model.ExclusiveNumber:
		return jsonvalue.NumberFromFloat(float64(v)), nil
	default:
		return jsonvalue.Value{}, errUnknownBoundaryVariant
	}
}

func encodeItems(it model.Items) (jsonvalue.Value, error) {
	switch v := it.(type) {
	case model.ItemDefinition:
		return Encode(v.Schema)
	case model.ArrayOfItems:
		return encodeSchemaList(v.Schemas)
	default:
		return jsonvalue.Value{}, errUnknownItemsVariant
	}
}

func encodePolicy(p model.ItemsPolicy) (jsonvalue.Value, error) {
	switch v := p.(type) {
	case model.PolicyAllow:
		return jsonvalue.Bool(true), nil
	case model.PolicyDisallow:
		return jsonvalue.Bool(false), nil
	case model.PolicySchema:
		return Encode(v.Schema)
	default:
		return jsonvalue.Value{}, errUnknownPolicyVariant
	}
}

func encodeSchemaList(schemas []model.Schema) (jsonvalue.Value, error) {
	items := make([]jsonvalue.Value, len(schemas))
	for i, s := range schemas {
		v, err := Encode(s)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		items[i] = v
	}
	return jsonvalue.Arr(items), nil
}

// encodeOrderedSchemaMap re-encodes a name->Schema map, recovering the
// original declaration order from src's corresponding raw child object
// when available (the common case: the schema came from decode.Decode),
// and falling back to a sorted order for keys that have no such source
// (the schema was built or mutated programmatically).
func encodeOrderedSchemaMap(src jsonvalue.Value, key string, m map[string]model.Schema) (jsonvalue.Value, error) {
	order := sourceChildKeyOrder(src, key, m)
	obj := jsonvalue.NewObject()
	for _, k := range order {
		s, ok := m[k]
		if !ok {
			continue
		}
		v, err := Encode(s)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		obj.Set(k, v)
	}
	return jsonvalue.Obj(obj), nil
}

func sourceChildKeyOrder(src jsonvalue.Value, key string, m map[string]model.Schema) []string {
	seen := map[string]bool{}
	var order []string
	if src.Kind() == jsonvalue.KindObject {
		if child, ok := src.Object().Get(key); ok && child.Kind() == jsonvalue.KindObject {
			for _, k := range child.Object().Keys() {
				if _, ok := m[k]; ok && !seen[k] {
					order = append(order, k)
					seen[k] = true
				}
			}
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
