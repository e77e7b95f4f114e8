// Package pointer implements JSON Pointer (RFC 6901) parsing/composition
// and the base-URI composition draft-6 $id resolution needs. It has no
// dependency on the schema model; it only manipulates strings.
package pointer

import (
	"net/url"
	"strconv"
	"strings"
)

// Escape converts a raw reference token into its RFC 6901 encoded form
// ("~" -> "~0", "/" -> "~1").
func Escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}

// Unescape is the inverse of Escape. Order matters: "~1" is decoded first,
// because decoding "~0" first would turn "~01" into "~1" and then wrongly
// into "/".
func Unescape(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// SplitFragment splits a URI fragment's pointer tail ("/a/b~1c") into its
// unescaped path segments (["a", "b/c"]). An empty or "/"-only fragment
// yields an empty, non-nil slice.
func SplitFragment(fragment string) []string {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return []string{}
	}
	parts := strings.Split(fragment, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, Unescape(p))
	}
	return out
}

// JoinFragment is the inverse of SplitFragment: it escapes and joins path
// segments into a pointer fragment tail (without the leading "#").
func JoinFragment(path []string) string {
	if len(path) == 0 {
		return ""
	}
	escaped := make([]string, len(path))
	for i, p := range path {
		escaped[i] = Escape(p)
	}
	return strings.Join(escaped, "/")
}

// Ref is the parsed form of a $ref (or $id) string resolved against a base
// namespace, per spec §4.4.
type Ref struct {
	IsPointer bool     // the ref carries a "#" fragment component
	Namespace string   // the resolved base namespace (document identity)
	Path      []string // unescaped JSON Pointer path segments
}

// Parse resolves ref against base, implementing spec §4.4's three cases:
// a same-document fragment ("#/a/b"), a bare base URI with no fragment,
// and the general "otherURI#/a/b" form.
func Parse(ref, base string) Ref {
	if strings.HasPrefix(ref, "#") {
		return Ref{IsPointer: true, Namespace: base, Path: SplitFragment(ref)}
	}
	idx := strings.IndexByte(ref, '#')
	if idx < 0 {
		return Ref{IsPointer: false, Namespace: resolveURI(base, ref), Path: nil}
	}
	uriPart := ref[:idx]
	fragPart := ref[idx:]
	return Ref{IsPointer: true, Namespace: resolveURI(base, uriPart), Path: SplitFragment(fragPart)}
}

// resolveURI composes a (possibly relative) URI reference against a base
// namespace using RFC 3986 reference resolution. An empty base or an empty
// ref simply returns the other side unchanged, so namespaces compose even
// when no base has been established yet (the document root).
func resolveURI(base, ref string) string {
	if ref == "" {
		return base
	}
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	resolved := baseURL.ResolveReference(refURL).String()
	// net/url roots every merged path at "/"; against a path-only relative
	// base such as "ns" the merged path stays relative, as in RFC 3986.
	if baseURL.Scheme == "" && baseURL.Host == "" && !strings.HasPrefix(base, "/") && !strings.HasPrefix(ref, "/") {
		resolved = strings.TrimPrefix(resolved, "/")
	}
	return resolved
}

// MakeKey constructs the canonical pool key for a Ref, per spec §4.4:
// ns + "#" + join(path) when the ref carries a fragment or a non-empty
// path, and the bare namespace otherwise.
func MakeKey(r Ref) string {
	if r.IsPointer || len(r.Path) > 0 {
		return r.Namespace + "#" + JoinFragment(r.Path)
	}
	return r.Namespace
}

// Key is a convenience that parses and immediately builds the canonical
// key, for call sites that don't need the intermediate Ref.
func Key(ref, base string) string {
	return MakeKey(Parse(ref, base))
}

// IndexSegment parses a path segment as an array index ("0", "12"),
// reporting ok=false for anything else (including "-", which draft-6
// pointer navigation for $ref does not need to support).
func IndexSegment(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, false // no leading zeros, per RFC 6901 array index grammar
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return n, true
}
