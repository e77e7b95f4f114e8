package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// Driver converts raw bytes or a reader into a Value. The default driver is
// backed by goccy/go-json; callers may install another implementation with
// SetDriver for benchmarking or to pin a different decode engine.
type Driver interface {
	Decode(r io.Reader) (Value, error)
}

type goccyDriver struct{}

func (goccyDriver) Decode(r io.Reader) (Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeTokenValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("jsonvalue: unexpected trailing data")
	}
	return v, nil
}

var currentDriver Driver = goccyDriver{}

// SetDriver installs a custom Driver. A nil argument restores the
// goccy/go-json default.
func SetDriver(d Driver) {
	if d == nil {
		currentDriver = goccyDriver{}
		return
	}
	currentDriver = d
}

// Decode parses a byte slice into a Value using the current Driver.
func Decode(b []byte) (Value, error) {
	return currentDriver.Decode(bytes.NewReader(b))
}

// DecodeReader parses a stream into a Value using the current Driver.
func DecodeReader(r io.Reader) (Value, error) {
	return currentDriver.Decode(r)
}

// tokenDecoder is the subset of *gojson.Decoder this package relies on;
// both encoding/json.Decoder and goccy/go-json's Decoder implement it.
type tokenDecoder interface {
	Token() (gojson.Token, error)
	More() bool
}

func decodeTokenValue(dec tokenDecoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec tokenDecoder, tok gojson.Token) (Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("jsonvalue: expected object key, got %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				val, err := decodeFromToken(dec, valTok)
				if err != nil {
					return Value{}, err
				}
				obj.Set(key, val)
			}
			// consume closing '}'
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Obj(obj), nil
		case '[':
			var items []Value
			for dec.More() {
				elemTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				v, err := decodeFromToken(dec, elemTok)
				if err != nil {
					return Value{}, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Arr(items), nil
		default:
			return Value{}, fmt.Errorf("jsonvalue: unexpected delimiter %v", t)
		}
	case gojson.Number:
		return Number(json.Number(string(t))), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("jsonvalue: unsupported token %T", tok)
	}
}
