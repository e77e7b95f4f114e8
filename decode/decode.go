// Package decode converts a jsonvalue.Value into the model.Schema it
// describes, enforcing the structural preconditions spec §4.1 names.
// Decoding never mutates its input and never partially succeeds: the
// first structural problem aborts with a single decode.Error.
package decode

import (
	"sort"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
)

// Decode converts a raw JSON value into a Schema.
func Decode(v jsonvalue.Value) (model.Schema, error) {
	return decodeAt(v, "")
}

func decodeAt(v jsonvalue.Value, path string) (model.Schema, error) {
	switch v.Kind() {
	case jsonvalue.KindBool:
		return model.BooleanSchema(v.Bool()), nil
	case jsonvalue.KindObject:
		return decodeObject(v, path)
	default:
		return nil, fail(StructurallyInvalid, path, "schema must be a boolean or an object")
	}
}

func child(path, segment string) string {
	return path + "/" + pointer.Escape(segment)
}

func decodeObject(v jsonvalue.Value, path string) (model.Schema, error) {
	obj := v.Object()
	sub := &model.SubSchema{Source: v}

	if raw, ok := obj.Get("type"); ok {
		ty, err := decodeType(raw, child(path, "type"))
		if err != nil {
			return nil, err
		}
		sub.Type = ty
	} else {
		sub.Type = model.AnyType{}
	}

	if idVal, ok := obj.Get("$id"); ok {
		s, err := mustString(idVal, child(path, "$id"))
		if err != nil {
			return nil, err
		}
		sub.ID = &s
	} else if idVal, ok := obj.Get("id"); ok {
		s, err := mustString(idVal, child(path, "id"))
		if err != nil {
			return nil, err
		}
		sub.ID = &s
	}

	if refVal, ok := obj.Get("$ref"); ok {
		s, err := mustString(refVal, child(path, "$ref"))
		if err != nil {
			return nil, err
		}
		sub.Ref = &s
	}

	if err := decodeOptionalString(obj, "title", path, &sub.Title); err != nil {
		return nil, err
	}
	if err := decodeOptionalString(obj, "description", path, &sub.Description); err != nil {
		return nil, err
	}
	if err := decodeOptionalString(obj, "pattern", path, &sub.Pattern); err != nil {
		return nil, err
	}
	if sub.Pattern != nil {
		if _, compileErr := regexp2.Compile(*sub.Pattern, regexp2.ECMAScript); compileErr != nil {
			return nil, fail(BadPattern, child(path, "pattern"), "invalid pattern: "+compileErr.Error())
		}
	}
	if err := decodeOptionalString(obj, "format", path, &sub.Format); err != nil {
		return nil, err
	}

	if raw, ok := obj.Get("default"); ok {
		d := raw
		sub.Default = &d
	}

	if raw, ok := obj.Get("examples"); ok {
		if raw.Kind() != jsonvalue.KindArray {
			return nil, fail(StructurallyInvalid, child(path, "examples"), "examples must be an array")
		}
		sub.Examples = raw.Array()
	}

	if raw, ok := obj.Get("definitions"); ok {
		defs, err := decodeSchemaMap(raw, child(path, "definitions"))
		if err != nil {
			return nil, err
		}
		sub.Definitions = defs
	}

	var err error
	if sub.MultipleOf, err = decodeOptionalPositiveFloat(obj, "multipleOf", path); err != nil {
		return nil, err
	}
	if sub.Maximum, err = decodeOptionalFloat(obj, "maximum", path); err != nil {
		return nil, err
	}
	if sub.Minimum, err = decodeOptionalFloat(obj, "minimum", path); err != nil {
		return nil, err
	}
	if raw, ok := obj.Get("exclusiveMaximum"); ok {
		if sub.ExclusiveMaximum, err = decodeExclusiveBoundary(raw, child(path, "exclusiveMaximum")); err != nil {
			return nil, err
		}
	}
	if raw, ok := obj.Get("exclusiveMinimum"); ok {
		if sub.ExclusiveMinimum, err = decodeExclusiveBoundary(raw, child(path, "exclusiveMinimum")); err != nil {
			return nil, err
		}
	}

	if sub.MaxLength, err = decodeOptionalNonNegInt(obj, "maxLength", path); err != nil {
		return nil, err
	}
	if sub.MinLength, err = decodeOptionalNonNegInt(obj, "minLength", path); err != nil {
		return nil, err
	}
	if sub.MaxItems, err = decodeOptionalNonNegInt(obj, "maxItems", path); err != nil {
		return nil, err
	}
	if sub.MinItems, err = decodeOptionalNonNegInt(obj, "minItems", path); err != nil {
		return nil, err
	}
	if sub.MaxProperties, err = decodeOptionalNonNegInt(obj, "maxProperties", path); err != nil {
		return nil, err
	}
	if sub.MinProperties, err = decodeOptionalNonNegInt(obj, "minProperties", path); err != nil {
		return nil, err
	}

	if raw, ok := obj.Get("items"); ok {
		items, err := decodeItems(raw, child(path, "items"))
		if err != nil {
			return nil, err
		}
		sub.Items = items
	} else {
		sub.Items = model.NoItems{}
	}

	if raw, ok := obj.Get("additionalItems"); ok {
		policy, err := decodePolicy(raw, child(path, "additionalItems"))
		if err != nil {
			return nil, err
		}
		sub.AdditionalItems = policy
	}

	if raw, ok := obj.Get("uniqueItems"); ok {
		b, err := mustBool(raw, child(path, "uniqueItems"))
		if err != nil {
			return nil, err
		}
		sub.UniqueItems = &b
	}

	if raw, ok := obj.Get("contains"); ok {
		s, err := decodeAt(raw, child(path, "contains"))
		if err != nil {
			return nil, err
		}
		sub.Contains = s
	}

	if raw, ok := obj.Get("required"); ok {
		names, err := decodeStringArray(raw, child(path, "required"))
		if err != nil {
			return nil, err
		}
		sub.Required = names
	}

	if raw, ok := obj.Get("properties"); ok {
		props, err := decodeSchemaMap(raw, child(path, "properties"))
		if err != nil {
			return nil, err
		}
		sub.Properties = props
	}

	if raw, ok := obj.Get("patternProperties"); ok {
		entries, err := decodePatternProperties(raw, child(path, "patternProperties"))
		if err != nil {
			return nil, err
		}
		sub.PatternProperties = entries
	}

	if raw, ok := obj.Get("additionalProperties"); ok {
		policy, err := decodePolicy(raw, child(path, "additionalProperties"))
		if err != nil {
			return nil, err
		}
		sub.AdditionalProperties = policy
	}

	if raw, ok := obj.Get("dependencies"); ok {
		deps, err := decodeDependencies(raw, child(path, "dependencies"))
		if err != nil {
			return nil, err
		}
		sub.Dependencies = deps
	}

	if raw, ok := obj.Get("propertyNames"); ok {
		s, err := decodeAt(raw, child(path, "propertyNames"))
		if err != nil {
			return nil, err
		}
		sub.PropertyNames = s
	}

	if raw, ok := obj.Get("enum"); ok {
		e, err := decodeEnum(raw, child(path, "enum"))
		if err != nil {
			return nil, err
		}
		sub.Enum = e
	}

	if raw, ok := obj.Get("const"); ok {
		c := raw
		sub.Const = &c
	}

	if sub.AllOf, err = decodeNonEmptySchemaArray(obj, "allOf", path); err != nil {
		return nil, err
	}
	if sub.AnyOf, err = decodeNonEmptySchemaArray(obj, "anyOf", path); err != nil {
		return nil, err
	}
	if sub.OneOf, err = decodeNonEmptySchemaArray(obj, "oneOf", path); err != nil {
		return nil, err
	}

	if raw, ok := obj.Get("not"); ok {
		s, err := decodeAt(raw, child(path, "not"))
		if err != nil {
			return nil, err
		}
		sub.Not = s
	}

	return model.ObjectSchema{Sub: sub}, nil
}

// ---- field decoders ----

func mustString(v jsonvalue.Value, path string) (string, error) {
	if v.Kind() != jsonvalue.KindString {
		return "", fail(StructurallyInvalid, path, "expected a string")
	}
	return v.Str(), nil
}

func mustBool(v jsonvalue.Value, path string) (bool, error) {
	if v.Kind() != jsonvalue.KindBool {
		return false, fail(StructurallyInvalid, path, "expected a boolean")
	}
	return v.Bool(), nil
}

func decodeOptionalString(obj *jsonvalue.Object, key, basePath string, dst **string) error {
	raw, ok := obj.Get(key)
	if !ok {
		return nil
	}
	s, err := mustString(raw, child(basePath, key))
	if err != nil {
		return err
	}
	*dst = &s
	return nil
}

func toFloat(v jsonvalue.Value, path string) (float64, error) {
	if v.Kind() != jsonvalue.KindNumber {
		return 0, fail(StructurallyInvalid, path, "expected a number")
	}
	f, err := strconv.ParseFloat(v.Number().String(), 64)
	if err != nil {
		return 0, fail(StructurallyInvalid, path, "malformed number")
	}
	return f, nil
}

func decodeOptionalFloat(obj *jsonvalue.Object, key, basePath string) (*float64, error) {
	raw, ok := obj.Get(key)
	if !ok {
		return nil, nil
	}
	f, err := toFloat(raw, child(basePath, key))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeOptionalPositiveFloat(obj *jsonvalue.Object, key, basePath string) (*float64, error) {
	f, err := decodeOptionalFloat(obj, key, basePath)
	if err != nil {
		return nil, err
	}
	if f != nil && *f <= 0 {
		return nil, fail(NegativeCount, child(basePath, key), "multipleOf must be strictly positive")
	}
	return f, nil
}

func decodeOptionalNonNegInt(obj *jsonvalue.Object, key, basePath string) (*int, error) {
	raw, ok := obj.Get(key)
	if !ok {
		return nil, nil
	}
	p := child(basePath, key)
	f, err := toFloat(raw, p)
	if err != nil {
		return nil, err
	}
	if f != float64(int(f)) {
		return nil, fail(StructurallyInvalid, p, "expected an integer")
	}
	n := int(f)
	if n < 0 {
		return nil, fail(NegativeCount, p, "value must be non-negative")
	}
	return &n, nil
}

func decodeExclusiveBoundary(v jsonvalue.Value, path string) (model.ExclusiveBoundary, error) {
	switch v.Kind() {
	case jsonvalue.KindBool:
		return model.ExclusiveBool(v.Bool()), nil
	case jsonvalue.KindNumber:
		f, err := toFloat(v, path)
		if err != nil {
			return nil, err
		}
		return model.ExclusiveNumber(f), nil
	default:
		return nil, fail(StructurallyInvalid, path, "expected a boolean or a number")
	}
}

func decodeType(v jsonvalue.Value, path string) (model.Type, error) {
	switch v.Kind() {
	case jsonvalue.KindString:
		name := v.Str()
		if !model.KnownTypeNames[name] {
			return nil, fail(UnknownType, path, "unknown type name "+name)
		}
		return model.SingleType{Name: name}, nil
	case jsonvalue.KindArray:
		items := v.Array()
		names := make([]string, 0, len(items))
		for i, it := range items {
			if it.Kind() != jsonvalue.KindString {
				return nil, fail(StructurallyInvalid, child(path, strconv.Itoa(i)), "type array elements must be strings")
			}
			name := it.Str()
			if !model.KnownTypeNames[name] {
				return nil, fail(UnknownType, child(path, strconv.Itoa(i)), "unknown type name "+name)
			}
			names = append(names, name)
		}
		return buildTypeFromNames(names)
	default:
		return nil, fail(StructurallyInvalid, path, "type must be a string or an array of strings")
	}
}

func buildTypeFromNames(names []string) (model.Type, error) {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	uniq := make([]string, 0, len(set))
	for n := range set {
		uniq = append(uniq, n)
	}
	sort.Strings(uniq)

	if len(uniq) == 0 {
		return model.AnyType{}, nil
	}
	if len(uniq) == 1 {
		return model.SingleType{Name: uniq[0]}, nil
	}
	if len(uniq) == 2 {
		hasNull := uniq[0] == model.TypeNull || uniq[1] == model.TypeNull
		if hasNull {
			other := uniq[0]
			if other == model.TypeNull {
				other = uniq[1]
			}
			return model.NullableType{Name: other}, nil
		}
	}
	return model.UnionType{Names: uniq}, nil
}

func decodeSchemaMap(v jsonvalue.Value, path string) (map[string]model.Schema, error) {
	if v.Kind() != jsonvalue.KindObject {
		return nil, fail(StructurallyInvalid, path, "expected an object")
	}
	out := map[string]model.Schema{}
	var err error
	v.Object().Range(func(k string, val jsonvalue.Value) bool {
		var s model.Schema
		s, err = decodeAt(val, child(path, k))
		if err != nil {
			return false
		}
		out[k] = s
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeItems(v jsonvalue.Value, path string) (model.Items, error) {
	switch v.Kind() {
	case jsonvalue.KindArray:
		items := v.Array()
		schemas := make([]model.Schema, 0, len(items))
		for i, it := range items {
			s, err := decodeAt(it, child(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, s)
		}
		return model.ArrayOfItems{Schemas: schemas}, nil
	default:
		s, err := decodeAt(v, path)
		if err != nil {
			return nil, err
		}
		return model.ItemDefinition{Schema: s}, nil
	}
}

func decodePolicy(v jsonvalue.Value, path string) (model.ItemsPolicy, error) {
	switch v.Kind() {
	case jsonvalue.KindBool:
		if v.Bool() {
			return model.PolicyAllow{}, nil
		}
		return model.PolicyDisallow{}, nil
	default:
		s, err := decodeAt(v, path)
		if err != nil {
			return nil, err
		}
		return model.PolicySchema{Schema: s}, nil
	}
}

func decodeStringArray(v jsonvalue.Value, path string) ([]string, error) {
	if v.Kind() != jsonvalue.KindArray {
		return nil, fail(StructurallyInvalid, path, "expected an array of strings")
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for i, it := range items {
		if it.Kind() != jsonvalue.KindString {
			return nil, fail(StructurallyInvalid, child(path, strconv.Itoa(i)), "expected a string")
		}
		out = append(out, it.Str())
	}
	return out, nil
}

func decodePatternProperties(v jsonvalue.Value, path string) ([]model.PatternPropertyEntry, error) {
	if v.Kind() != jsonvalue.KindObject {
		return nil, fail(StructurallyInvalid, path, "expected an object")
	}
	var out []model.PatternPropertyEntry
	var err error
	v.Object().Range(func(k string, val jsonvalue.Value) bool {
		if _, compileErr := regexp2.Compile(k, regexp2.ECMAScript); compileErr != nil {
			err = fail(BadPattern, child(path, k), "invalid pattern: "+compileErr.Error())
			return false
		}
		var s model.Schema
		s, err = decodeAt(val, child(path, k))
		if err != nil {
			return false
		}
		out = append(out, model.PatternPropertyEntry{Pattern: k, Schema: s})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeDependencies(v jsonvalue.Value, path string) ([]model.DependencyEntry, error) {
	if v.Kind() != jsonvalue.KindObject {
		return nil, fail(StructurallyInvalid, path, "expected an object")
	}
	var out []model.DependencyEntry
	var err error
	v.Object().Range(func(k string, val jsonvalue.Value) bool {
		p := child(path, k)
		switch val.Kind() {
		case jsonvalue.KindArray:
			var names []string
			names, err = decodeStringArray(val, p)
			if err != nil {
				return false
			}
			out = append(out, model.DependencyEntry{Name: k, Dep: model.ArrayPropNames{Names: names}})
		default:
			var s model.Schema
			s, err = decodeAt(val, p)
			if err != nil {
				return false
			}
			out = append(out, model.DependencyEntry{Name: k, Dep: model.PropSchema{Schema: s}})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeEnum(v jsonvalue.Value, path string) ([]jsonvalue.Value, error) {
	if v.Kind() != jsonvalue.KindArray {
		return nil, fail(StructurallyInvalid, path, "enum must be an array")
	}
	items := v.Array()
	if len(items) == 0 {
		return nil, fail(EmptyArrayForNonEmpty, path, "enum must not be empty")
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if jsonvalue.Equal(items[i], items[j]) {
				return nil, fail(InvalidEnum, path, "enum values must be pairwise distinct")
			}
		}
	}
	return items, nil
}

func decodeNonEmptySchemaArray(obj *jsonvalue.Object, key, basePath string) ([]model.Schema, error) {
	raw, ok := obj.Get(key)
	if !ok {
		return nil, nil
	}
	path := child(basePath, key)
	if raw.Kind() != jsonvalue.KindArray {
		return nil, fail(StructurallyInvalid, path, "expected an array of schemas")
	}
	items := raw.Array()
	if len(items) == 0 {
		return nil, fail(EmptyArrayForNonEmpty, path, key+" must not be empty")
	}
	out := make([]model.Schema, 0, len(items))
	for i, it := range items {
		s, err := decodeAt(it, child(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
