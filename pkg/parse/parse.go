// Package parse turns literal text into dynamic values. A piece of text
// is first tried as an ISO-8601 date/time; failing that it is read as a
// JSON-shaped literal (null, boolean, number, string, array, object) and
// converted recursively. JSON literal syntax overlaps with most textual
// formats (quoted CSV, config files, REPL input), which makes it a good
// lowest common denominator for messy input.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/datakit/internal/iso8601"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

// ParseError reports text that is neither a date/time nor a literal.
type ParseError struct {
	Source string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse value %q", e.Source)
}

// MarshalJSON encodes the error as {"cannotParseValue": <text>}.
func (e *ParseError) MarshalJSON() ([]byte, error) {
	return value.MarshalTagged("cannotParseValue", e.Source)
}

// UnmarshalJSON decodes the error.
func (e *ParseError) UnmarshalJSON(data []byte) error {
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	if tag != "cannotParseValue" {
		return fmt.Errorf("unknown parsing error variant %q", tag)
	}
	return json.Unmarshal(raw, &e.Source)
}

// Parser converts literal text into values. The zero value is ready to
// use.
type Parser struct{}

// New returns a Parser.
func New() Parser {
	return Parser{}
}

// Parse interprets s as a value. Malformed input never panics; total
// failure returns a ParseError carrying the original text.
func (Parser) Parse(s string) (value.Value, error) {
	if dt, ok := iso8601.Parse(s); ok {
		return value.NewDateTime(dt), nil
	}

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return value.Value{}, &ParseError{Source: s}
	}
	// Trailing tokens mean s was not a single literal.
	if _, err := dec.Token(); err == nil {
		return value.Value{}, &ParseError{Source: s}
	}
	return v, nil
}

// decodeValue reads one JSON value from the token stream and converts it.
// Object member order and duplicate names survive because the tokens are
// consumed in document order.
func decodeValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}
	return convertToken(dec, tok)
}

func convertToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case nil:
		// A literal null is absence the author wrote down deliberately.
		return value.NewMissing(value.Expected), nil
	case bool:
		return value.NewBool(t), nil
	case json.Number:
		return convertNumber(t), nil
	case string:
		// Quoted text may still be a date in disguise.
		if dt, ok := iso8601.Parse(t); ok {
			return value.NewDateTime(dt), nil
		}
		return value.NewText(t), nil
	case json.Delim:
		switch t {
		case '[':
			return convertArray(dec)
		case '{':
			return convertObject(dec)
		}
	}
	return value.Value{}, fmt.Errorf("unexpected token %v", tok)
}

// convertNumber maps a literal number to a value. A number the source
// claims is integral but cannot represent exactly becomes
// Missing(Unexpected): not an error, a data-quality signal.
func convertNumber(n json.Number) value.Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := n.Int64()
		if err != nil {
			return value.NewMissing(value.Unexpected)
		}
		return value.NewInt(i)
	}
	f, err := n.Float64()
	if err != nil {
		return value.NewMissing(value.Unexpected)
	}
	return value.NewReal(f)
}

func convertArray(dec *json.Decoder) (value.Value, error) {
	var items []value.Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return value.Value{}, err
	}
	return value.NewArray(items...), nil
}

func convertObject(dec *json.Decoder) (value.Value, error) {
	var members []value.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		members = append(members, value.Member{Name: key, Value: v})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return value.Value{}, err
	}
	return value.NewObject(members...), nil
}
