package validate

import (
	"strconv"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
)

func (ctx *context) validateArray(sub *model.SubSchema, instance jsonvalue.Value, ptr, ns string, depth int) (jsonvalue.Value, []*Error) {
	items := instance.Array()
	newItems := append([]jsonvalue.Value(nil), items...)
	var errs []*Error

	switch it := sub.Items.(type) {
	case model.ItemDefinition:
		for i, elem := range items {
			p := elemPointer(ptr, i)
			out, ierrs := ctx.validate(it.Schema, elem, p, ns, depth+1)
			newItems[i] = out
			errs = append(errs, ierrs...)
		}
	case model.ArrayOfItems:
		n := len(it.Schemas)
		for i, elem := range items {
			p := elemPointer(ptr, i)
			if i < n {
				out, ierrs := ctx.validate(it.Schemas[i], elem, p, ns, depth+1)
				newItems[i] = out
				errs = append(errs, ierrs...)
				continue
			}
			switch ap := sub.AdditionalItems.(type) {
			case model.PolicySchema:
				out, ierrs := ctx.validate(ap.Schema, elem, p, ns, depth+1)
				newItems[i] = out
				errs = append(errs, ierrs...)
			case model.PolicyDisallow:
				errs = append(errs, &Error{Kind: AdditionalItemsDisallowed, Pointer: p, Keyword: "additionalItems", IndexA: i})
			}
		}
	}

	if sub.MaxItems != nil && len(items) > *sub.MaxItems {
		errs = append(errs, &Error{Kind: MaxItems, Pointer: ptr, Keyword: "maxItems"})
	}
	if sub.MinItems != nil && len(items) < *sub.MinItems {
		errs = append(errs, &Error{Kind: MinItems, Pointer: ptr, Keyword: "minItems"})
	}

	if sub.UniqueItems != nil && *sub.UniqueItems {
	outer:
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if jsonvalue.Equal(items[i], items[j]) {
					errs = append(errs, &Error{Kind: NotUnique, Pointer: ptr, Keyword: "uniqueItems", IndexA: i, IndexB: j})
					break outer
				}
			}
		}
	}

	if sub.Contains != nil {
		found := false
		for _, elem := range items {
			_, cerrs := ctx.validate(sub.Contains, elem, ptr, ns, depth+1)
			if len(cerrs) == 0 {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, &Error{Kind: Contains, Pointer: ptr, Keyword: "contains"})
		}
	}

	return jsonvalue.Arr(newItems), errs
}

func elemPointer(base string, i int) string {
	return base + "/" + pointer.Escape(strconv.Itoa(i))
}
