package i18n

import "strings"

// Translator retrieves the failure text for a message code. data carries
// optional fragments to splice into the text (for example the missing key or
// the raw input that failed to convert).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl := t.template(code)
	if tmpl == "" {
		return code
	}
	return expand(tmpl, data)
}

func (t dictTranslator) template(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "not_string":
			return "String ではありません"
		case "not_integer":
			return "Integer ではありません"
		case "not_float":
			return "Float ではありません"
		case "not_boolean":
			return "Boolean ではありません"
		case "not_nil":
			return "nil ではありません"
		case "not_mapping":
			return "マッピングではありません"
		case "not_sequence":
			return "シーケンスではありません"
		case "missing_key":
			return "キー `{key}` がありません"
		case "index_out_of_range":
			return "インデックスが範囲外です"
		case "no_match":
			return "`{want}` と一致しません"
		case "convert_integer":
			return "\"{raw}\" を Integer に変換できません"
		case "convert_float":
			return "\"{raw}\" を Float に変換できません"
		case "convert_boolean":
			return "\"{raw}\" を Boolean に変換できません"
		case "invalid_time":
			return "\"{raw}\" を RFC3339 時刻として解析できません"
		case "parse_error":
			return "解析エラー: {cause}"
		}
	default: // "en"
		switch code {
		case "not_string":
			return "not a String"
		case "not_integer":
			return "not an Integer"
		case "not_float":
			return "not a Float"
		case "not_boolean":
			return "not a Boolean"
		case "not_nil":
			return "isn't nil"
		case "not_mapping":
			return "not a mapping"
		case "not_sequence":
			return "not a sequence"
		case "missing_key":
			return "missing key `{key}`"
		case "index_out_of_range":
			return "index out of range"
		case "no_match":
			return "doesn't match `{want}`"
		case "convert_integer":
			return `cannot convert "{raw}" into an Integer`
		case "convert_float":
			return `cannot convert "{raw}" into a Float`
		case "convert_boolean":
			return `cannot convert "{raw}" into a Boolean`
		case "invalid_time":
			return `cannot parse "{raw}" as an RFC3339 time`
		case "parse_error":
			return "parse error: {cause}"
		}
	}
	return ""
}

// expand splices data values into {name} placeholders. Templates without
// placeholders pass through untouched.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	out := tmpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
