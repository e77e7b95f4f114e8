package validate_test

import (
	"testing"

	"github.com/sixdraft/schema6/decode"
	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/validate"
)

func mustSchema(t *testing.T, src string) model.Schema {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	if err != nil {
		t.Fatalf("jsonvalue.Decode(schema): %v", err)
	}
	s, err := decode.Decode(v)
	if err != nil {
		t.Fatalf("decode.Decode: %v", err)
	}
	return s
}

func mustValue(t *testing.T, src string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	if err != nil {
		t.Fatalf("jsonvalue.Decode(instance): %v", err)
	}
	return v
}

func run(t *testing.T, schemaSrc, instanceSrc string) []*validate.Error {
	t.Helper()
	schema := mustSchema(t, schemaSrc)
	instance := mustValue(t, instanceSrc)
	_, errs := validate.ValidateSchema(validate.DefaultOptions(), instance, schema)
	return errs
}

func requireSingle(t *testing.T, errs []*validate.Error, ptr string, kind validate.Kind) *validate.Error {
	t.Helper()
	for _, e := range errs {
		if e.Pointer == ptr && e.Kind == kind {
			return e
		}
	}
	t.Fatalf("expected an error at %q with kind %v, got %#v", ptr, kind, errs)
	return nil
}

// S1
func TestS1_IntegerType(t *testing.T) {
	if errs := run(t, `{"type":"integer"}`, `3`); len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	errs := run(t, `{"type":"integer"}`, `3.5`)
	e := requireSingle(t, errs, "", validate.InvalidType)
	if e.ExpectedType != "integer" || e.ActualType != "number" {
		t.Fatalf("expected InvalidType(integer, number), got %+v", e)
	}
}

// S2
func TestS2_RequiredAndNestedMaxLength(t *testing.T) {
	schema := `{"type":"object","required":["a"],"properties":{"a":{"type":"string","maxLength":3}}}`
	errs := run(t, schema, `{"a":"hello"}`)
	requireSingle(t, errs, "/a", validate.MaxLength)

	errs = run(t, schema, `{}`)
	requireSingle(t, errs, "", validate.Required)
}

// S3
func TestS3_TupleItemsAdditionalItems(t *testing.T) {
	schema := `{"items":[{"type":"integer"},{"type":"string"}],"additionalItems":false}`
	if errs := run(t, schema, `[1,"x"]`); len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	errs := run(t, schema, `[1,"x",true]`)
	e := requireSingle(t, errs, "/2", validate.AdditionalItemsDisallowed)
	if e.IndexA != 2 {
		t.Fatalf("expected IndexA=2, got %+v", e)
	}
}

// S4
func TestS4_OneOfManyMatch(t *testing.T) {
	schema := `{"oneOf":[{"type":"integer"},{"type":"number"}]}`
	errs := run(t, schema, `3`)
	e := requireSingle(t, errs, "", validate.OneOfManyMatch)
	if len(e.Indices) != 2 || e.Indices[0] != 0 || e.Indices[1] != 1 {
		t.Fatalf("expected indices [0 1], got %v", e.Indices)
	}
	if errs := run(t, schema, `3.5`); len(errs) != 0 {
		t.Fatalf("expected no errors for 3.5, got %#v", errs)
	}
}

// S5
func TestS5_RecursiveRef(t *testing.T) {
	schema := `{
		"$id":"root",
		"definitions":{"node":{"type":"object","properties":{"next":{"$ref":"#/definitions/node"}}}},
		"$ref":"#/definitions/node"
	}`
	if errs := run(t, schema, `{"next":{"next":{}}}`); len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	errs := run(t, schema, `{"next":42}`)
	e := requireSingle(t, errs, "/next", validate.InvalidType)
	if e.ExpectedType != "object" || e.ActualType != "number" {
		t.Fatalf("expected InvalidType(object, number), got %+v", e)
	}
}

// S6
func TestS6_Dependencies(t *testing.T) {
	schema := `{"dependencies":{"a":["b"],"c":{"required":["d"]}}}`
	if errs := run(t, schema, `{"a":1,"b":2,"c":3,"d":4}`); len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	errs := run(t, schema, `{"a":1}`)
	e := requireSingle(t, errs, "", validate.Required)
	if e.MissingKey != "b" {
		t.Fatalf("expected Required(b), got %+v", e)
	}

	errs = run(t, schema, `{"c":1}`)
	e = requireSingle(t, errs, "", validate.Required)
	if e.MissingKey != "d" {
		t.Fatalf("expected Required(d) via schema dependency, got %+v", e)
	}
}

func TestBooleanSchemaLaws(t *testing.T) {
	if errs := run(t, `true`, `{"anything":[1,2,3]}`); len(errs) != 0 {
		t.Fatalf("expected BooleanSchema(true) to accept anything, got %#v", errs)
	}
	if errs := run(t, `false`, `42`); len(errs) == 0 {
		t.Fatalf("expected BooleanSchema(false) to reject everything")
	}
}

func TestCombinatorAlgebra_DoubleNotEqualsIdentity(t *testing.T) {
	inner := `{"type":"string"}`
	doubled := `{"not":{"not":` + inner + `}}`
	for _, instance := range []string{`"ok"`, `42`} {
		a := run(t, inner, instance)
		b := run(t, doubled, instance)
		if (len(a) == 0) != (len(b) == 0) {
			t.Fatalf("not(not(S)) should agree with S for %s: a=%v b=%v", instance, a, b)
		}
	}
}

func TestCombinatorAlgebra_AllOfIsConjunction(t *testing.T) {
	s := `{"type":"string"}`
	tt := `{"minLength":3}`
	combined := `{"allOf":[` + s + `,` + tt + `]}`
	for _, instance := range []string{`"ab"`, `"abcd"`, `42`} {
		sErrs := run(t, s, instance)
		tErrs := run(t, tt, instance)
		cErrs := run(t, combined, instance)
		bothPass := len(sErrs) == 0 && len(tErrs) == 0
		if bothPass != (len(cErrs) == 0) {
			t.Fatalf("allOf([S,T]) should succeed iff both succeed, instance=%s", instance)
		}
	}
}

func TestStableOrdering_RepeatedRunsMatch(t *testing.T) {
	schema := `{"type":"object","required":["a","b"],"properties":{"a":{"type":"string"},"b":{"type":"integer","minimum":5}}}`
	instance := `{"a":1,"b":2}`
	first := run(t, schema, instance)
	second := run(t, schema, instance)
	if len(first) != len(second) {
		t.Fatalf("expected stable error counts, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Pointer != second[i].Pointer {
			t.Fatalf("expected stable error ordering, got %#v then %#v", first, second)
		}
	}
}

func TestAnyOfCollectsLosingBranchErrorsButSucceeds(t *testing.T) {
	schema := `{"anyOf":[{"type":"string"},{"type":"integer"}]}`
	if errs := run(t, schema, `"ok"`); len(errs) != 0 {
		t.Fatalf("expected anyOf success, got %#v", errs)
	}
	errs := run(t, schema, `true`)
	requireSingle(t, errs, "", validate.AnyOfFailed)
}

func TestPropertyNamesValidation(t *testing.T) {
	schema := `{"propertyNames":{"pattern":"^[a-z]+$"}}`
	if errs := run(t, schema, `{"abc":1}`); len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	errs := run(t, schema, `{"ABC":1}`)
	requireSingle(t, errs, "/ABC", validate.PropertyNames)
}

func TestPatternPropertiesMultiMatch(t *testing.T) {
	schema := `{"patternProperties":{"^a":{"type":"string"},"b$":{"maxLength":1}}}`
	errs := run(t, schema, `{"ab":"xyz"}`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error (maxLength from the second pattern), got %#v", errs)
	}
	requireSingle(t, errs, "/ab", validate.MaxLength)
}

func TestApplyDefaultsFillsMissingProperties(t *testing.T) {
	schema := mustSchema(t, `{"type":"object","properties":{"a":{"type":"string","default":"fallback"}}}`)
	instance := mustValue(t, `{}`)
	opts := validate.DefaultOptions()
	opts.ApplyDefaults = true
	out, errs := validate.ValidateSchema(opts, instance, schema)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	v, ok := out.Object().Get("a")
	if !ok || v.Str() != "fallback" {
		t.Fatalf("expected default to be filled in, got %#v", out)
	}
}

func TestMaxDepthProducesRecursionLimit(t *testing.T) {
	opts := validate.DefaultOptions()
	opts.MaxDepth = 1
	schema := mustSchema(t, `{"items":{"items":{"items":{"type":"integer"}}}}`)
	instance := mustValue(t, `[[[["deep"]]]]`)
	_, errs := validate.ValidateSchema(opts, instance, schema)
	found := false
	for _, e := range errs {
		if e.Kind == validate.RecursionLimit {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a RecursionLimit error, got %#v", errs)
	}
}
