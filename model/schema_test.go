package model_test

import (
	"testing"

	"github.com/sixdraft/schema6/model"
)

func TestSchemaSumType_Exhaustive(t *testing.T) {
	schemas := []model.Schema{
		model.BooleanSchema(true),
		model.BooleanSchema(false),
		model.ObjectSchema{Sub: &model.SubSchema{}},
	}
	for _, s := range schemas {
		switch v := s.(type) {
		case model.BooleanSchema:
			_ = bool(v)
		case model.ObjectSchema:
			if v.Sub == nil {
				t.Fatalf("expected non-nil Sub")
			}
		default:
			t.Fatalf("unhandled Schema variant %T", v)
		}
	}
}

func TestTypeSumType_Exhaustive(t *testing.T) {
	types := []model.Type{
		model.AnyType{},
		model.SingleType{Name: model.TypeString},
		model.NullableType{Name: model.TypeInteger},
		model.UnionType{Names: []string{model.TypeInteger, model.TypeString}},
	}
	for _, ty := range types {
		switch ty.(type) {
		case model.AnyType, model.SingleType, model.NullableType, model.UnionType:
			// exhaustive
		default:
			t.Fatalf("unhandled Type variant %T", ty)
		}
	}
}

func TestItemsSumType_Exhaustive(t *testing.T) {
	items := []model.Items{
		model.NoItems{},
		model.ItemDefinition{Schema: model.BooleanSchema(true)},
		model.ArrayOfItems{Schemas: []model.Schema{model.BooleanSchema(true)}},
	}
	for _, it := range items {
		switch it.(type) {
		case model.NoItems, model.ItemDefinition, model.ArrayOfItems:
		default:
			t.Fatalf("unhandled Items variant %T", it)
		}
	}
}

func TestDependencySumType_Exhaustive(t *testing.T) {
	deps := []model.Dependency{
		model.PropSchema{Schema: model.BooleanSchema(true)},
		model.ArrayPropNames{Names: []string{"a", "b"}},
	}
	for _, d := range deps {
		switch d.(type) {
		case model.PropSchema, model.ArrayPropNames:
		default:
			t.Fatalf("unhandled Dependency variant %T", d)
		}
	}
}

func TestKnownTypeNames(t *testing.T) {
	for _, name := range []string{"integer", "number", "string", "boolean", "object", "array", "null"} {
		if !model.KnownTypeNames[name] {
			t.Fatalf("expected %q to be known", name)
		}
	}
	if model.KnownTypeNames["bogus"] {
		t.Fatalf("expected %q to be unknown", "bogus")
	}
}
