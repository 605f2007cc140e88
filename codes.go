package godec

// Message codes understood by the i18n dictionary. Decoders report failures by
// code; the rendered text is the entire Err payload.
const (
	CodeNotString      = "not_string"
	CodeNotInteger     = "not_integer"
	CodeNotFloat       = "not_float"
	CodeNotBoolean     = "not_boolean"
	CodeNotNil         = "not_nil"
	CodeNotMapping     = "not_mapping"
	CodeNotSequence    = "not_sequence"
	CodeMissingKey     = "missing_key"
	CodeIndexRange     = "index_out_of_range"
	CodeNoMatch        = "no_match"
	CodeConvertInteger = "convert_integer"
	CodeConvertFloat   = "convert_float"
	CodeConvertBoolean = "convert_boolean"
	CodeInvalidTime    = "invalid_time"
	CodeParseError     = "parse_error"
)
