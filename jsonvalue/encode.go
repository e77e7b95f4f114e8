package jsonvalue

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Encode serializes v back to JSON bytes, preserving object key order and
// number text exactly as decoded.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
		return nil
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case KindNumber:
		n := v.n.String()
		if n == "" {
			n = "0"
		}
		buf.WriteString(n)
		return nil
	case KindString:
		return writeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.a {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindObject:
		buf.WriteByte('{')
		first := true
		v.o.Range(func(k string, val Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			_ = writeString(buf, k)
			buf.WriteByte(':')
			_ = writeValue(buf, val)
			return true
		})
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("jsonvalue: unknown kind %v", v.kind)
	}
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := gojson.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
