package redislist

import (
	"encoding/json"
	"strconv"
)

// Decoder converts one raw list entry into a T.
type Decoder[T any] func(raw string) (T, error)

// Strings returns a decoder that passes entries through unchanged.
func Strings() Decoder[string] {
	return func(raw string) (string, error) {
		return raw, nil
	}
}

// Ints returns a decoder for base-10 integers.
func Ints() Decoder[int] {
	return strconv.Atoi
}

// Int64s returns a decoder for base-10 64-bit integers.
func Int64s() Decoder[int64] {
	return func(raw string) (int64, error) {
		return strconv.ParseInt(raw, 10, 64)
	}
}

// Float64s returns a decoder for decimal floating point values.
func Float64s() Decoder[float64] {
	return func(raw string) (float64, error) {
		return strconv.ParseFloat(raw, 64)
	}
}

// JSON returns a decoder that unmarshals each entry into a T.
func JSON[T any]() Decoder[T] {
	return func(raw string) (T, error) {
		var v T
		err := json.Unmarshal([]byte(raw), &v)
		return v, err
	}
}
