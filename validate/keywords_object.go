package validate

import (
	"sort"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
)

func (ctx *context) validateObjectKeywords(sub *model.SubSchema, instance jsonvalue.Value, ptr, ns string, depth int) (jsonvalue.Value, []*Error) {
	obj := instance.Object()
	newObj := obj.Clone()
	var errs []*Error

	for _, name := range sub.Required {
		if !obj.Has(name) {
			errs = append(errs, &Error{Kind: Required, Pointer: ptr, Keyword: "required", MissingKey: name})
		}
	}

	matched := map[string]bool{}

	for _, key := range obj.Keys() {
		if s, ok := sub.Properties[key]; ok {
			matched[key] = true
			val, _ := obj.Get(key)
			p := propPointer(ptr, key)
			out, perrs := ctx.validate(s, val, p, ns, depth+1)
			newObj.Set(key, out)
			errs = append(errs, perrs...)
		}
	}

	for _, entry := range sub.PatternProperties {
		for _, key := range obj.Keys() {
			if !ctx.patternMatches(entry.Pattern, key) {
				continue
			}
			matched[key] = true
			val, _ := obj.Get(key)
			p := propPointer(ptr, key)
			out, perrs := ctx.validate(entry.Schema, val, p, ns, depth+1)
			newObj.Set(key, out)
			errs = append(errs, perrs...)
		}
	}

	switch ap := sub.AdditionalProperties.(type) {
	case model.PolicyDisallow:
		for _, key := range obj.Keys() {
			if !matched[key] {
				errs = append(errs, &Error{Kind: AdditionalPropertiesDisallowed, Pointer: propPointer(ptr, key), Keyword: "additionalProperties", MissingKey: key})
			}
		}
	case model.PolicySchema:
		for _, key := range obj.Keys() {
			if matched[key] {
				continue
			}
			val, _ := obj.Get(key)
			p := propPointer(ptr, key)
			out, perrs := ctx.validate(ap.Schema, val, p, ns, depth+1)
			newObj.Set(key, out)
			errs = append(errs, perrs...)
		}
	}

	if sub.MaxProperties != nil && obj.Len() > *sub.MaxProperties {
		errs = append(errs, &Error{Kind: MaxProperties, Pointer: ptr, Keyword: "maxProperties"})
	}
	if sub.MinProperties != nil && obj.Len() < *sub.MinProperties {
		errs = append(errs, &Error{Kind: MinProperties, Pointer: ptr, Keyword: "minProperties"})
	}

	// dependencies: a PropSchema dependency's own failures are merged
	// directly into errs (not wrapped) so e.g. a missing required property
	// pulled in by a schema dependency is reported as a plain Required
	// error at the instance root, matching the spec's literal scenario.
	for _, dep := range sub.Dependencies {
		if !obj.Has(dep.Name) {
			continue
		}
		switch d := dep.Dep.(type) {
		case model.ArrayPropNames:
			for _, req := range d.Names {
				if !obj.Has(req) {
					errs = append(errs, &Error{Kind: Required, Pointer: ptr, Keyword: "dependencies", MissingKey: req})
				}
			}
		case model.PropSchema:
			_, derrs := ctx.validate(d.Schema, instance, ptr, ns, depth+1)
			errs = append(errs, derrs...)
		}
	}

	if sub.PropertyNames != nil {
		for _, key := range obj.Keys() {
			p := propPointer(ptr, key)
			_, nerrs := ctx.validate(sub.PropertyNames, jsonvalue.String(key), p, ns, depth+1)
			if len(nerrs) > 0 {
				errs = append(errs, &Error{Kind: PropertyNames, Pointer: p, Keyword: "propertyNames", Inner: nerrs})
			}
		}
	}

	if ctx.opts.ApplyDefaults {
		applyDefaults(sub, obj, newObj)
	}

	return jsonvalue.Obj(newObj), errs
}

func applyDefaults(sub *model.SubSchema, obj, newObj *jsonvalue.Object) {
	var missing []string
	for name, s := range sub.Properties {
		if obj.Has(name) {
			continue
		}
		if os, ok := s.(model.ObjectSchema); ok && os.Sub.Default != nil {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		s := sub.Properties[name].(model.ObjectSchema)
		newObj.Set(name, *s.Sub.Default)
	}
}

func propPointer(base, key string) string {
	return base + "/" + pointer.Escape(key)
}
