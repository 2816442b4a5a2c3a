package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
LabelRule describes how the raw class value of a record is turned into a
sample label.

When Positive tokens are given, a record is positive if and only if its
class token is one of them. Otherwise, when Negative tokens are given, a
record is negative if and only if its class token is one of them. With no
tokens at all, class tokens are parsed as booleans ("1", "t", "true", "0",
"f", "false"...).
*/
type LabelRule struct {
	Positive []string `yaml:"positive,omitempty"`
	Negative []string `yaml:"negative,omitempty"`
}

/*
Validate returns an error if both positive and negative tokens are given,
as the rule would then be ambiguous.
*/
func (lr LabelRule) Validate() error {
	if len(lr.Positive) > 0 && len(lr.Negative) > 0 {
		return fmt.Errorf("label rule cannot declare both positive and negative tokens")
	}
	return nil
}

/*
Parse takes a class token and returns the label it corresponds to
according to the rule, or an error if the rule has no tokens and the token
is not a boolean.
*/
func (lr LabelRule) Parse(token string) (bool, error) {
	token = strings.TrimSpace(token)
	switch {
	case len(lr.Positive) > 0:
		return contains(lr.Positive, token), nil
	case len(lr.Negative) > 0:
		return !contains(lr.Negative, token), nil
	}
	label, err := strconv.ParseBool(token)
	if err != nil {
		return false, fmt.Errorf("parsing label %q: not a boolean", token)
	}
	return label, nil
}

/*
ParseValue takes a class value as returned by a database driver and
returns the label it corresponds to. Booleans are taken as they are,
numbers are positive when non-zero whatever the rule's tokens, and strings
or byte slices are parsed with Parse.
*/
func (lr LabelRule) ParseValue(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return lr.Parse(v)
	case []byte:
		return lr.Parse(string(v))
	case nil:
		return false, fmt.Errorf("parsing label: undefined value")
	}
	f, err := NumericValue(value)
	if err != nil {
		return false, fmt.Errorf("parsing label: %v", err)
	}
	return f != 0, nil
}

/*
NumericValue takes a feature value as returned by a database driver and
returns it as a float64, or an error if it is not a number.
*/
func NumericValue(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case []byte:
		return ParseFloat(string(v))
	case string:
		return ParseFloat(v)
	case nil:
		return 0, fmt.Errorf("undefined value")
	}
	return 0, fmt.Errorf("expected a number, got %T value", value)
}

/*
ParseFloat takes a token and returns the finite number it holds, or an
error if it is not a number or is NaN or infinite.
*/
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("converting %q to float64: %v", s, err)
	}
	if _, err = finite(f); err != nil {
		return 0, fmt.Errorf("converting %q to float64: %v", s, err)
	}
	return f, nil
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %v", f)
	}
	return f, nil
}

func contains(tokens []string, token string) bool {
	for _, t := range tokens {
		if strings.TrimSpace(t) == token {
			return true
		}
	}
	return false
}
