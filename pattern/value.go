// File: value.go
// Title: Typed Value Representation and Coercion
// Description: Defines the tagged Value type carried by pattern leaves and
//              implements coercion of raw text into typed values as well as
//              extraction of [default: X] annotations from option
//              description text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial value model and coercion rules

package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValueType represents the type tag of a Value
type ValueType int

const (
	// ValueTypeNil represents an absent value (unbound argument or option)
	ValueTypeNil ValueType = iota

	// ValueTypeInt represents an integer value
	ValueTypeInt

	// ValueTypeDouble represents a floating point value
	ValueTypeDouble

	// ValueTypeBoolean represents a boolean value
	ValueTypeBoolean

	// ValueTypeString represents a plain string value
	ValueTypeString

	// ValueTypeList represents an accumulated list of strings, produced by
	// the matcher for repeatable arguments and options
	ValueTypeList
)

// String returns the string representation of the value type
func (vt ValueType) String() string {
	switch vt {
	case ValueTypeNil:
		return "nil"
	case ValueTypeInt:
		return "int"
	case ValueTypeDouble:
		return "double"
	case ValueTypeBoolean:
		return "boolean"
	case ValueTypeString:
		return "string"
	case ValueTypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a tagged value carried by pattern leaves. A Value is produced
// once, by coercion or by the matcher, and never re-coerced afterwards.
type Value struct {
	Type ValueType   // Type tag
	Data interface{} // int, float64, bool, string, []string, or nil
}

// NilValue returns the absent value.
func NilValue() Value {
	return Value{Type: ValueTypeNil}
}

// IntValue returns an integer value.
func IntValue(i int) Value {
	return Value{Type: ValueTypeInt, Data: i}
}

// DoubleValue returns a floating point value.
func DoubleValue(f float64) Value {
	return Value{Type: ValueTypeDouble, Data: f}
}

// BooleanValue returns a boolean value.
func BooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, Data: b}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{Type: ValueTypeString, Data: s}
}

// ListValue returns a list value over the given strings.
func ListValue(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{Type: ValueTypeList, Data: items}
}

// IsNil returns true if the value is absent.
func (v Value) IsNil() bool {
	return v.Type == ValueTypeNil
}

// IsTruthy returns true if the value would satisfy a flag check: a true
// boolean, a non-zero counter, a non-empty string or list.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case ValueTypeBoolean:
		return v.Data.(bool)
	case ValueTypeInt:
		return v.Data.(int) != 0
	case ValueTypeDouble:
		return v.Data.(float64) != 0
	case ValueTypeString:
		return v.Data.(string) != ""
	case ValueTypeList:
		return len(v.Data.([]string)) != 0
	default:
		return false
	}
}

// GetStringValue returns the value as a string, converting if necessary.
func (v Value) GetStringValue() string {
	switch v.Type {
	case ValueTypeString:
		return v.Data.(string)
	case ValueTypeNil:
		return ""
	case ValueTypeList:
		return strings.Join(v.Data.([]string), " ")
	default:
		return fmt.Sprintf("%v", v.Data)
	}
}

// GetBoolValue returns the boolean value if possible.
func (v Value) GetBoolValue() (bool, bool) {
	if v.Type == ValueTypeBoolean {
		return v.Data.(bool), true
	}
	return false, false
}

// GetIntValue returns the integer value if possible.
func (v Value) GetIntValue() (int, bool) {
	if v.Type == ValueTypeInt {
		return v.Data.(int), true
	}
	return 0, false
}

// GetListValue returns the list value if possible.
func (v Value) GetListValue() ([]string, bool) {
	if v.Type == ValueTypeList {
		return v.Data.([]string), true
	}
	return nil, false
}

// Interface returns the native Go representation of the value: nil, int,
// float64, bool, string or []string.
func (v Value) Interface() interface{} {
	return v.Data
}

// String returns a display representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "nil"
	case ValueTypeList:
		return fmt.Sprintf("[%s]", strings.Join(v.Data.([]string), ", "))
	default:
		return fmt.Sprintf("%v", v.Data)
	}
}

// Coercion patterns, ordered by priority. The first matching pattern wins.
var (
	intPattern     = regexp.MustCompile(`^[0-9]+$`)
	doublePattern  = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)
	defaultPattern = regexp.MustCompile(`(?i)\[default: (.*)\]`)
)

// ParseValue classifies raw text into a typed value. It tries, in order,
// the integer pattern, the floating point pattern, and the case-insensitive
// boolean literals; anything else falls through to a string value.
func ParseValue(text string) Value {
	if intPattern.MatchString(text) {
		i, err := strconv.Atoi(text)
		if err == nil {
			return IntValue(i)
		}
	}
	if doublePattern.MatchString(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return DoubleValue(f)
		}
	}
	switch strings.ToLower(text) {
	case "true":
		return BooleanValue(true)
	case "false":
		return BooleanValue(false)
	}
	return StringValue(text)
}

// ParseDefault extracts a [default: X] annotation from description text.
// The label is matched case-insensitively and X is captured greedily up to
// the closing bracket. X is returned as a string value without further
// coercion; if no annotation is present the empty string value is returned.
func ParseDefault(text string) Value {
	match := defaultPattern.FindStringSubmatch(text)
	if match == nil {
		return StringValue("")
	}
	return StringValue(match[1])
}
