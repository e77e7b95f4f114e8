package encode_test

import (
	"testing"

	"github.com/sixdraft/schema6/decode"
	"github.com/sixdraft/schema6/encode"
	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
)

func mustDecode(t *testing.T, src string) model.Schema {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	if err != nil {
		t.Fatalf("jsonvalue.Decode: %v", err)
	}
	s, err := decode.Decode(v)
	if err != nil {
		t.Fatalf("decode.Decode: %v", err)
	}
	return s
}

func roundTrip(t *testing.T, src string) (jsonvalue.Value, jsonvalue.Value) {
	t.Helper()
	orig, err := jsonvalue.Decode([]byte(src))
	if err != nil {
		t.Fatalf("jsonvalue.Decode: %v", err)
	}
	s, err := decode.Decode(orig)
	if err != nil {
		t.Fatalf("decode.Decode: %v", err)
	}
	out, err := encode.Encode(s)
	if err != nil {
		t.Fatalf("encode.Encode: %v", err)
	}
	return orig, out
}

func TestEncode_BooleanSchemas(t *testing.T) {
	v, err := encode.Encode(model.BooleanSchema(true))
	if err != nil || v.Kind() != jsonvalue.KindBool || v.Bool() != true {
		t.Fatalf("expected true boolean schema to encode to true, got %v err=%v", v, err)
	}
	v, err = encode.Encode(model.BooleanSchema(false))
	if err != nil || v.Kind() != jsonvalue.KindBool || v.Bool() != false {
		t.Fatalf("expected false boolean schema to encode to false, got %v err=%v", v, err)
	}
}

func TestEncode_RoundTrip_SimpleKeywords(t *testing.T) {
	cases := []string{
		`{"type":"string","minLength":2,"maxLength":5}`,
		`{"type":["string","null"]}`,
		`{"type":["integer","string"]}`,
		`{"enum":[1,2,3]}`,
		`{"const":"fixed"}`,
		`{"multipleOf":2.5,"maximum":10,"exclusiveMinimum":0}`,
		`{"exclusiveMaximum":true,"maximum":10}`,
		`{"pattern":"^[a-z]+$","format":"email"}`,
		`{"$id":"http://example.com/s","title":"t","description":"d"}`,
	}
	for _, c := range cases {
		orig, out := roundTrip(t, c)
		if !jsonvalue.Equal(orig, out) {
			t.Fatalf("round trip mismatch for %s: got %#v", c, out)
		}
	}
}

func TestEncode_RoundTrip_Items(t *testing.T) {
	orig, out := roundTrip(t, `{"items":{"type":"integer"}}`)
	if !jsonvalue.Equal(orig, out) {
		t.Fatalf("round trip mismatch: %#v", out)
	}
	orig, out = roundTrip(t, `{"items":[{"type":"integer"},{"type":"string"}],"additionalItems":false}`)
	if !jsonvalue.Equal(orig, out) {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestEncode_RoundTrip_ObjectKeywords(t *testing.T) {
	orig, out := roundTrip(t, `{
		"properties":{"a":{"type":"string"},"b":{"type":"integer"}},
		"required":["a"],
		"patternProperties":{"^x-":{"type":"string"}},
		"additionalProperties":false,
		"dependencies":{"a":["b"],"c":{"required":["d"]}}
	}`)
	if !jsonvalue.Equal(orig, out) {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestEncode_RoundTrip_Combinators(t *testing.T) {
	orig, out := roundTrip(t, `{
		"allOf":[{"type":"string"}],
		"anyOf":[{"type":"string"},{"type":"integer"}],
		"oneOf":[{"type":"string"},{"type":"null"}],
		"not":{"type":"boolean"}
	}`)
	if !jsonvalue.Equal(orig, out) {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestEncode_RoundTrip_NestedDefinitionsOrderRecoveredFromSource(t *testing.T) {
	src := `{"definitions":{"z":{"type":"string"},"a":{"type":"integer"},"m":{"type":"boolean"}}}`
	orig, out := roundTrip(t, src)
	if !jsonvalue.Equal(orig, out) {
		t.Fatalf("round trip mismatch: %#v", out)
	}
	defs, ok := out.Object().Get("definitions")
	if !ok {
		t.Fatalf("expected definitions key")
	}
	keys := defs.Object().Keys()
	want := []string{"z", "a", "m"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("expected original declaration order %v, got %v", want, keys)
		}
	}
}

func TestEncode_UnknownKeywordSurvivesRoundTrip(t *testing.T) {
	orig, out := roundTrip(t, `{"type":"string","x-custom":{"nested":true}}`)
	if !jsonvalue.Equal(orig, out) {
		t.Fatalf("expected unknown keyword to survive round trip, got %#v", out)
	}
}

func TestEncode_ProgrammaticMutationOverridesSource(t *testing.T) {
	s := mustDecode(t, `{"type":"string"}`)
	sub := s.(model.ObjectSchema).Sub
	newTitle := "changed"
	sub.Title = &newTitle

	out, err := encode.Encode(s)
	if err != nil {
		t.Fatalf("encode.Encode: %v", err)
	}
	titleVal, ok := out.Object().Get("title")
	if !ok || titleVal.Str() != "changed" {
		t.Fatalf("expected mutated title to be encoded, got %#v", out)
	}
}
