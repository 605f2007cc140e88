package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("not_string", nil); msg != "not a String" {
		t.Fatalf("expected the english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("not_string", nil); msg == "not a String" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_PlaceholderExpansion(t *testing.T) {
	if msg := T("missing_key", map[string]string{"key": "a"}); msg != "missing key `a`" {
		t.Fatalf("expected the key spliced in, got %q", msg)
	}
	if msg := T("convert_integer", map[string]string{"raw": "12a"}); msg != `cannot convert "12a" into an Integer` {
		t.Fatalf("expected the raw input spliced in, got %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected the code itself, got %q", msg)
	}
}

func TestSetTranslator_NilRestoresDefault(t *testing.T) {
	SetTranslator(nil)
	if msg := T("not_sequence", nil); msg != "not a sequence" {
		t.Fatalf("expected the default dictionary, got %q", msg)
	}
}
