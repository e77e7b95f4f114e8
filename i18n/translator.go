// Package i18n translates validator error codes (the string form of
// validate.Kind) into human-readable messages. The built-in dictionaries
// have no entries for decoder codes (decode.ErrorKind strings); T returns
// any code without an entry unchanged. Message lookup is decoupled from the shape of
// the error values themselves so that a caller can swap dictionaries
// (or supply a fully custom Translator) without touching the engine.
package i18n

// Translator retrieves localized messages for error codes. data carries
// optional metadata to interpolate into the message (for example the
// expected type name, or a missing key).
type Translator interface {
	Message(code string, data map[string]string) string
}

type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		if msg, ok := jaMessages[code]; ok {
			return msg
		}
	default: // "en"
		if msg, ok := enMessages[code]; ok {
			return msg
		}
	}
	return code
}

var enMessages = map[string]string{
	"always_fail":                      "schema always fails",
	"invalid_type":                     "invalid type",
	"required":                         "required property missing",
	"not_in_enum":                      "value is not one of the enumerated values",
	"not_const":                        "value does not equal the constant",
	"multiple_of":                      "value is not a multiple of the given number",
	"maximum":                          "value exceeds the maximum",
	"exclusive_maximum":                "value is not strictly less than the maximum",
	"minimum":                          "value is below the minimum",
	"exclusive_minimum":                "value is not strictly greater than the minimum",
	"max_length":                       "string is too long",
	"min_length":                       "string is too short",
	"pattern":                          "string does not match the pattern",
	"format":                           "string does not satisfy the format",
	"max_items":                        "array has too many items",
	"min_items":                        "array has too few items",
	"not_unique":                       "array items are not unique",
	"contains":                         "array does not contain a matching item",
	"max_properties":                   "object has too many properties",
	"min_properties":                   "object has too few properties",
	"additional_properties_disallowed": "additional property is not allowed",
	"additional_items_disallowed":      "additional item is not allowed",
	"property_names":                   "property name does not satisfy propertyNames",
	"invalid_dependency":               "dependency is not satisfied",
	"all_of_failed":                    "allOf branch failed",
	"any_of_failed":                    "no anyOf branch matched",
	"one_of_none_match":                "no oneOf branch matched",
	"one_of_many_match":                "more than one oneOf branch matched",
	"not_disallowed":                   "value matches a schema under not",
	"unresolvable_reference":           "$ref could not be resolved",
	"recursion_limit":                  "maximum recursion depth exceeded",
}

var jaMessages = map[string]string{
	"always_fail":                      "常に失敗するスキーマです",
	"invalid_type":                     "型が不正です",
	"required":                         "必須プロパティが不足しています",
	"not_in_enum":                      "列挙値のいずれにも一致しません",
	"not_const":                        "定数値と一致しません",
	"multiple_of":                      "指定した数の倍数ではありません",
	"maximum":                          "最大値を超えています",
	"exclusive_maximum":                "最大値未満である必要があります",
	"minimum":                          "最小値未満です",
	"exclusive_minimum":                "最小値を超える必要があります",
	"max_length":                       "文字列が長すぎます",
	"min_length":                       "文字列が短すぎます",
	"pattern":                          "パターンに一致しません",
	"format":                           "フォーマットに一致しません",
	"max_items":                        "配列の要素数が多すぎます",
	"min_items":                        "配列の要素数が少なすぎます",
	"not_unique":                       "配列の要素が一意ではありません",
	"contains":                         "containsに一致する要素がありません",
	"max_properties":                   "プロパティ数が多すぎます",
	"min_properties":                   "プロパティ数が少なすぎます",
	"additional_properties_disallowed": "追加のプロパティは許可されていません",
	"additional_items_disallowed":      "追加の要素は許可されていません",
	"property_names":                   "プロパティ名がpropertyNamesを満たしません",
	"invalid_dependency":               "依存関係を満たしていません",
	"all_of_failed":                    "allOfの分岐が失敗しました",
	"any_of_failed":                    "anyOfのいずれにも一致しません",
	"one_of_none_match":                "oneOfのいずれにも一致しません",
	"one_of_many_match":                "oneOfの複数の分岐に一致しました",
	"not_disallowed":                   "notに指定したスキーマに一致してしまいました",
	"unresolvable_reference":           "$refを解決できません",
	"recursion_limit":                  "最大再帰深度を超えました",
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Any other value falls back to "en".
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation, not limited to the
// built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
