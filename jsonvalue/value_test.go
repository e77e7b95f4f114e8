package jsonvalue_test

import (
	"testing"

	"github.com/sixdraft/schema6/jsonvalue"
)

func TestDecode_PreservesObjectKeyOrder(t *testing.T) {
	v, err := jsonvalue.Decode([]byte(`{"b":1,"a":2,"c":3}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := v.Object().Keys()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}

func TestDecode_NumberPreservesText(t *testing.T) {
	v, err := jsonvalue.Decode([]byte(`1.0`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Kind() != jsonvalue.KindNumber {
		t.Fatalf("kind = %v, want number", v.Kind())
	}
	if v.Number().String() != "1.0" {
		t.Fatalf("number text = %q, want %q", v.Number().String(), "1.0")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := []byte(`{"x":[1,2,"s",true,null,{"y":1.5}]}`)
	v, err := jsonvalue.Decode(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := jsonvalue.Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	v2, err := jsonvalue.Decode(out)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !jsonvalue.Equal(v, v2) {
		t.Fatalf("round-trip mismatch: %s -> %s", in, out)
	}
}

func TestEqual_NumbersByValueNotText(t *testing.T) {
	a, _ := jsonvalue.Decode([]byte(`1.0`))
	b, _ := jsonvalue.Decode([]byte(`1`))
	if !jsonvalue.Equal(a, b) {
		t.Fatalf("expected 1.0 == 1")
	}
}

func TestEqual_ObjectsOrderIndependent(t *testing.T) {
	a, _ := jsonvalue.Decode([]byte(`{"a":1,"b":2}`))
	b, _ := jsonvalue.Decode([]byte(`{"b":2,"a":1}`))
	if !jsonvalue.Equal(a, b) {
		t.Fatalf("expected order-independent object equality")
	}
}

func TestFromYAML_PreservesOrderAndTypes(t *testing.T) {
	v, err := jsonvalue.FromYAML([]byte("b: 1\na: two\nc: true\n"))
	if err != nil {
		t.Fatalf("fromYAML: %v", err)
	}
	keys := v.Object().Keys()
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Fatalf("keys = %v", keys)
	}
	bv, _ := v.Object().Get("b")
	if bv.Kind() != jsonvalue.KindNumber {
		t.Fatalf("expected b to decode as a number")
	}
	cv, _ := v.Object().Get("c")
	if cv.Kind() != jsonvalue.KindBool || cv.Bool() != true {
		t.Fatalf("expected c to decode as true")
	}
}
