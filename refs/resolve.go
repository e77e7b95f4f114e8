package refs

import (
	"fmt"

	"github.com/sixdraft/schema6/decode"
	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
)

// ResolveError reports that a "$ref" could not be resolved: no pool hit,
// no navigable local path, or a cycle.
type ResolveError struct {
	Ref string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("unresolvable reference %q", e.Ref)
}

// ResolveRef resolves ref against base namespace ns, per spec §4.4: a pool
// hit short-circuits; otherwise it falls back to local pointer navigation
// from ref's namespace root, then follows a chain of $ref-on-$ref with a
// cycle guard keyed on the canonical pool key.
func ResolveRef(pool *Pool, ns, ref string) (model.Schema, error) {
	return resolveChain(pool, ns, ref, map[string]bool{})
}

func resolveChain(pool *Pool, ns, ref string, seen map[string]bool) (model.Schema, error) {
	r := pointer.Parse(ref, ns)
	key := pointer.MakeKey(r)
	if seen[key] {
		return nil, &ResolveError{Ref: ref}
	}
	seen[key] = true

	schema, err := resolveOnce(pool, r, key)
	if err != nil {
		return nil, err
	}

	obj, ok := schema.(model.ObjectSchema)
	if !ok || obj.Sub.Ref == nil {
		return schema, nil
	}

	nextBase := r.Namespace
	if obj.Sub.ID != nil {
		nextBase = pointer.Parse(*obj.Sub.ID, r.Namespace).Namespace
	}
	return resolveChain(pool, nextBase, *obj.Sub.Ref, seen)
}

func resolveOnce(pool *Pool, r pointer.Ref, key string) (model.Schema, error) {
	if schema, ok := pool.Lookup(key); ok {
		return schema, nil
	}

	root, ok := pool.Root(r.Namespace)
	if !ok {
		return nil, &ResolveError{Ref: pointer.JoinFragment(r.Path)}
	}
	return navigate(sourceOf(root), r.Path)
}

// navigate walks v by raw JSON Pointer path (object keys, array indices)
// and decodes whatever it lands on as a Schema.
func navigate(v jsonvalue.Value, path []string) (model.Schema, error) {
	cur := v
	for _, seg := range path {
		switch cur.Kind() {
		case jsonvalue.KindObject:
			child, ok := cur.Object().Get(seg)
			if !ok {
				return nil, &ResolveError{Ref: seg}
			}
			cur = child
		case jsonvalue.KindArray:
			idx, ok := pointer.IndexSegment(seg)
			arr := cur.Array()
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, &ResolveError{Ref: seg}
			}
			cur = arr[idx]
		default:
			return nil, &ResolveError{Ref: seg}
		}
	}
	return decode.Decode(cur)
}
