// File: opts.go
// Title: Bound Argument Map
// Description: Defines the name-value map produced by a successful parse
//              together with typed accessors for the common value shapes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package chomsky

import (
	"fmt"
	"strconv"
)

// Opts maps canonical leaf names (option name with dashes, <argument>,
// ALLCAPS argument or command word) to their bound values: nil, bool, int,
// float64, string or []string.
type Opts map[string]interface{}

// GetString returns the value of key as a string
func (o Opts) GetString(key string) (string, error) {
	v, err := o.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("key %q holds %T, not a string", key, v)
	}
	return s, nil
}

// GetBool returns the value of key as a bool
func (o Opts) GetBool(key string) (bool, error) {
	v, err := o.lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("key %q holds %T, not a bool", key, v)
	}
	return b, nil
}

// GetInt returns the value of key as an int. String values that parse as
// integers are converted, so counters and numeric arguments both work.
func (o Opts) GetInt(key string) (int, error) {
	v, err := o.lookup(key)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case string:
		n, convErr := strconv.Atoi(t)
		if convErr != nil {
			return 0, fmt.Errorf("key %q holds %q, not an integer", key, t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("key %q holds %T, not an integer", key, v)
	}
}

// GetFloat returns the value of key as a float64, converting numeric
// string values.
func (o Opts) GetFloat(key string) (float64, error) {
	v, err := o.lookup(key)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		f, convErr := strconv.ParseFloat(t, 64)
		if convErr != nil {
			return 0, fmt.Errorf("key %q holds %q, not a number", key, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("key %q holds %T, not a number", key, v)
	}
}

// GetStrings returns the value of key as a string slice. A nil value
// yields an empty slice so repeatable leaves that never matched remain
// range-safe.
func (o Opts) GetStrings(key string) ([]string, error) {
	v, err := o.lookup(key)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return t, nil
	default:
		return nil, fmt.Errorf("key %q holds %T, not a string list", key, v)
	}
}

// Has reports whether key was part of the usage pattern at all
func (o Opts) Has(key string) bool {
	_, exists := o[key]
	return exists
}

func (o Opts) lookup(key string) (interface{}, error) {
	v, exists := o[key]
	if !exists {
		return nil, fmt.Errorf("key %q is not part of the usage pattern", key)
	}
	return v, nil
}
