package jsonvalue

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a single YAML document into a Value using the same
// ordered-object representation Decode produces, so a schema or instance
// can be authored in YAML interchangeably with JSON.
func FromYAML(b []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Value{}, err
	}
	if doc.Kind == 0 {
		return Null(), nil
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Null(), nil
		}
		node = node.Content[0]
	}
	return fromYAMLNode(node)
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return scalarToValue(n)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Arr(items), nil
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return Value{}, fmt.Errorf("jsonvalue: non-string mapping key: %w", err)
			}
			val, err := fromYAMLNode(valNode)
			if err != nil {
				return Value{}, err
			}
			obj.Set(key, val)
		}
		return Obj(obj), nil
	default:
		return Null(), nil
	}
}

func scalarToValue(n *yaml.Node) (Value, error) {
	var raw any
	if err := n.Decode(&raw); err != nil {
		return Value{}, err
	}
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case int:
		return Number(json.Number(fmt.Sprintf("%d", t))), nil
	case int64:
		return Number(json.Number(fmt.Sprintf("%d", t))), nil
	case uint64:
		return Number(json.Number(fmt.Sprintf("%d", t))), nil
	case float64:
		b, err := json.Marshal(t)
		if err != nil {
			return Value{}, err
		}
		return Number(json.Number(b)), nil
	case string:
		return String(t), nil
	default:
		return String(n.Value), nil
	}
}

// ToYAML renders v as a YAML document, preserving object key order.
func ToYAML(v Value) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toYAMLNode(v Value) (*yaml.Node, error) {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		val := "false"
		if v.b {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}, nil
	case KindNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v.n.String()}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}, nil
	case KindArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range v.a {
			n, err := toYAMLNode(e)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case KindObject:
		m := &yaml.Node{Kind: yaml.MappingNode}
		var outerErr error
		v.o.Range(func(k string, val Value) bool {
			vn, err := toYAMLNode(val)
			if err != nil {
				outerErr = err
				return false
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
			return true
		})
		if outerErr != nil {
			return nil, outerErr
		}
		return m, nil
	default:
		return nil, fmt.Errorf("jsonvalue: unknown kind %v", v.kind)
	}
}
