package validate

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/sixdraft/schema6/jsonvalue"
	"github.com/sixdraft/schema6/model"
)

func (ctx *context) validateString(sub *model.SubSchema, instance jsonvalue.Value, ptr string) []*Error {
	s := instance.Str()
	length := utf8.RuneCountInString(s)
	var errs []*Error

	if sub.MaxLength != nil && length > *sub.MaxLength {
		errs = append(errs, &Error{Kind: MaxLength, Pointer: ptr, Keyword: "maxLength"})
	}
	if sub.MinLength != nil && length < *sub.MinLength {
		errs = append(errs, &Error{Kind: MinLength, Pointer: ptr, Keyword: "minLength"})
	}
	if sub.Pattern != nil && !ctx.patternMatches(*sub.Pattern, s) {
		errs = append(errs, &Error{Kind: Pattern, Pointer: ptr, Keyword: "pattern"})
	}
	if sub.Format != nil && ctx.opts.EnabledFormats[*sub.Format] {
		if passed, known := ctx.opts.Formats.Check(*sub.Format, s); known && !passed {
			errs = append(errs, &Error{Kind: Format, Pointer: ptr, Keyword: "format", FormatName: *sub.Format})
		}
	}

	return errs
}

// patternMatches compiles pattern with the ECMA dialect the decoder
// already validated for "pattern" values and "patternProperties" keys,
// caching the compiled
// regex since the same pattern is commonly checked against many values.
func (ctx *context) patternMatches(pattern, s string) bool {
	re, err := ctx.compilePattern(pattern)
	if err != nil {
		return false
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}

func (ctx *context) compilePattern(p string) (*regexp2.Regexp, error) {
	if re, ok := ctx.patternCache[p]; ok {
		return re, nil
	}
	re, err := regexp2.Compile(p, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	ctx.patternCache[p] = re
	return re, nil
}
