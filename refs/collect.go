package refs

import (
	"github.com/sixdraft/schema6/decode"
	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
	"github.com/sixdraft/schema6/pointer"
)

// CollectIds walks root's retained source JSON and returns a populated
// Pool plus root's own resolved namespace ("" when root carries no $id),
// per spec §4.3.
func CollectIds(root model.Schema) (*Pool, string) {
	pool := NewPool()
	rootNS := ""

	if obj, ok := root.(model.ObjectSchema); ok && obj.Sub.ID != nil {
		rootNS = pointer.Parse(*obj.Sub.ID, "").Namespace
	}
	pool.setRoot(rootNS, root)
	if rootNS != "" {
		pool.setKey(rootNS, root)
	}

	source := sourceOf(root)
	walk(source, rootNS, pool)
	return pool, rootNS
}

func sourceOf(s model.Schema) jsonvalue.Value {
	if obj, ok := s.(model.ObjectSchema); ok {
		return obj.Sub.Source
	}
	return jsonvalue.Value{}
}

// walk recurses through the raw JSON tree rooted at v, tracking the current
// base namespace ns, registering a pool entry every time it finds an object
// carrying "$id" or "id". It visits every object and array uniformly,
// matching the generic walk spec §4.3 describes.
func walk(v jsonvalue.Value, ns string, pool *Pool) {
	switch v.Kind() {
	case jsonvalue.KindObject:
		obj := v.Object()
		newNS := ns
		if idStr, ok := idKeyword(obj); ok {
			ref := pointer.Parse(idStr, ns)
			newNS = ref.Namespace
			if schema, err := decode.Decode(v); err == nil {
				pool.setKey(pointer.MakeKey(ref), schema)
				pool.setKey(newNS, schema)
				pool.setRoot(newNS, schema)
			}
		}
		obj.Range(func(_ string, child jsonvalue.Value) bool {
			walk(child, newNS, pool)
			return true
		})
	case jsonvalue.KindArray:
		for _, elem := range v.Array() {
			walk(elem, ns, pool)
		}
	}
}

func idKeyword(obj *jsonvalue.Object) (string, bool) {
	if v, ok := obj.Get("$id"); ok && v.Kind() == jsonvalue.KindString {
		return v.Str(), true
	}
	if v, ok := obj.Get("id"); ok && v.Kind() == jsonvalue.KindString {
		return v.Str(), true
	}
	return "", false
}
