// Package refs implements IdCollector and RefResolver: it walks a decoded
// schema's retained source JSON to build a SchemataPool of fully-qualified
// ids, then resolves "$ref" strings against that pool during validation.
package refs

import "github.com/sixdraft/schema6/model"

// Pool maps canonical pool keys (built by pointer.MakeKey) to the schema
// found at that id, and separately tracks each namespace's root schema so
// RefResolver can fall back to local pointer navigation when a $ref has no
// exact pool hit.
type Pool struct {
	byKey map[string]model.Schema
	roots map[string]model.Schema
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{byKey: map[string]model.Schema{}, roots: map[string]model.Schema{}}
}

func (p *Pool) setKey(key string, s model.Schema) {
	p.byKey[key] = s
}

func (p *Pool) setRoot(ns string, s model.Schema) {
	p.roots[ns] = s
}

// Lookup returns the schema registered under key, if any.
func (p *Pool) Lookup(key string) (model.Schema, bool) {
	s, ok := p.byKey[key]
	return s, ok
}

// Root returns the root schema registered for namespace ns, if any.
func (p *Pool) Root(ns string) (model.Schema, bool) {
	s, ok := p.roots[ns]
	return s, ok
}
