package models

import (
	"encoding/json"
	"strconv"
)

type numberState uint8

const (
	numberAbsent numberState = iota
	numberValid
	numberInvalid
)

// Number is a JSON numeric field that tolerates dirty catalog data.
// Unmarshalling never fails: null or a missing field leaves the Number
// absent, a number (bare or quoted) is stored, and anything else is
// recorded as invalid so formatting can degrade per record instead of
// aborting the whole response.
type Number struct {
	value float64
	state numberState
}

func NumberOf(v float64) Number {
	return Number{value: v, state: numberValid}
}

func NumberFromPtr(v *float64) Number {
	if v == nil {
		return Number{}
	}
	return NumberOf(*v)
}

// Float64 returns the value and whether it is usable.
func (n Number) Float64() (float64, bool) {
	return n.value, n.state == numberValid
}

// Absent reports whether the field was missing or null.
func (n Number) Absent() bool {
	return n.state == numberAbsent
}

// Invalid reports whether the field was present but not numeric.
func (n Number) Invalid() bool {
	return n.state == numberInvalid
}

func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*n = Number{}
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Number{value: v, state: numberValid}
		return nil
	}
	// quoted numbers show up in older catalog rows
	var quoted string
	if err := json.Unmarshal(data, &quoted); err == nil {
		if v, err := strconv.ParseFloat(quoted, 64); err == nil {
			*n = Number{value: v, state: numberValid}
			return nil
		}
	}
	*n = Number{state: numberInvalid}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n.state != numberValid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}
