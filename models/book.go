package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Id string

type Book struct {
	Id     Id     `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookFields carries the writable fields of a book. A nil field was not
// supplied by the caller.
type BookFields struct {
	Title  *string
	Author *string
}

// BookRequest is the decoded body of a create or update call. Values stay
// untyped so that absent, null and non-string input can be told apart.
type BookRequest struct {
	Title  any `json:"title"`
	Author any `json:"author"`
}

// CreateFields keeps only string values; anything else counts as missing.
func (r BookRequest) CreateFields() BookFields {
	return BookFields{
		Title:  stringValue(r.Title),
		Author: stringValue(r.Author),
	}
}

// UpdateFields coerces every present value to text.
func (r BookRequest) UpdateFields() BookFields {
	return BookFields{
		Title:  textValue(r.Title),
		Author: textValue(r.Author),
	}
}

func stringValue(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func textValue(v any) *string {
	if v == nil {
		return nil
	}
	s := Text(v)
	return &s
}

// numberText uses plain notation between 1e-6 and 1e21 and exponent
// notation without zero padding outside it.
func numberText(f float64) string {
	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exponent, _ := strings.Cut(s, "e")
		sign := exponent[:1]
		digits := strings.TrimLeft(exponent[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Text renders a decoded JSON value as text: numbers in shortest form,
// arrays joined with commas and objects as "[object Object]".
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return numberText(t)
	case json.Number:
		return t.String()
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = Text(item)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
