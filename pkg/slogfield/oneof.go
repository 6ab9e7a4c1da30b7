// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slogfield

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/z5labs/oneof"
)

// Value1 returns a group value holding the index and value of the
// active alternative of u. An empty container only reports index 0.
func Value1[T1 any](u oneof.Of1[T1]) slog.Value {
	return group(u.Index(), oneof.Match1(u, value[T1], value[oneof.Empty]))
}

// Value2 is like [Value1] for an [oneof.Of2].
func Value2[T1, T2 any](u oneof.Of2[T1, T2]) slog.Value {
	return group(u.Index(), oneof.Match2(u, value[T1], value[T2], value[oneof.Empty]))
}

// Value3 is like [Value1] for an [oneof.Of3].
func Value3[T1, T2, T3 any](u oneof.Of3[T1, T2, T3]) slog.Value {
	return group(u.Index(), oneof.Match3(u, value[T1], value[T2], value[T3], value[oneof.Empty]))
}

// Value4 is like [Value1] for an [oneof.Of4].
func Value4[T1, T2, T3, T4 any](u oneof.Of4[T1, T2, T3, T4]) slog.Value {
	return group(u.Index(), oneof.Match4(u, value[T1], value[T2], value[T3], value[T4], value[oneof.Empty]))
}

// OneOf1 returns an slog.Attr for an [oneof.Of1].
func OneOf1[T1 any](key string, u oneof.Of1[T1]) slog.Attr {
	return slog.Attr{Key: key, Value: Value1(u)}
}

// OneOf2 returns an slog.Attr for an [oneof.Of2].
func OneOf2[T1, T2 any](key string, u oneof.Of2[T1, T2]) slog.Attr {
	return slog.Attr{Key: key, Value: Value2(u)}
}

// OneOf3 returns an slog.Attr for an [oneof.Of3].
func OneOf3[T1, T2, T3 any](key string, u oneof.Of3[T1, T2, T3]) slog.Attr {
	return slog.Attr{Key: key, Value: Value3(u)}
}

// OneOf4 returns an slog.Attr for an [oneof.Of4].
func OneOf4[T1, T2, T3, T4 any](key string, u oneof.Of4[T1, T2, T3, T4]) slog.Attr {
	return slog.Attr{Key: key, Value: Value4(u)}
}

// Loggable1 extends an [oneof.Of1] so it can be logged directly.
type Loggable1[T1 any] struct {
	oneof.Of1[T1]
}

// LogValue implements the [slog.LogValuer] interface.
func (l Loggable1[T1]) LogValue() slog.Value {
	return Value1(l.Of1)
}

// Loggable2 extends an [oneof.Of2] so it can be logged directly.
type Loggable2[T1, T2 any] struct {
	oneof.Of2[T1, T2]
}

// LogValue implements the [slog.LogValuer] interface.
func (l Loggable2[T1, T2]) LogValue() slog.Value {
	return Value2(l.Of2)
}

// Loggable3 extends an [oneof.Of3] so it can be logged directly.
type Loggable3[T1, T2, T3 any] struct {
	oneof.Of3[T1, T2, T3]
}

// LogValue implements the [slog.LogValuer] interface.
func (l Loggable3[T1, T2, T3]) LogValue() slog.Value {
	return Value3(l.Of3)
}

// Loggable4 extends an [oneof.Of4] so it can be logged directly.
type Loggable4[T1, T2, T3, T4 any] struct {
	oneof.Of4[T1, T2, T3, T4]
}

// LogValue implements the [slog.LogValuer] interface.
func (l Loggable4[T1, T2, T3, T4]) LogValue() slog.Value {
	return Value4(l.Of4)
}

func group(idx oneof.Index, v slog.Value) slog.Value {
	if idx == oneof.None {
		return slog.GroupValue(slog.Uint64("index", 0))
	}
	return slog.GroupValue(
		slog.Uint64("index", uint64(idx)),
		slog.Attr{Key: "value", Value: v},
	)
}

// value is instantiated once per alternative and picks the most
// specific slog.Value kind for it. Pointers to a kind are followed.
func value[T any](v T) slog.Value {
	if oneof.Is[T, oneof.Empty]() {
		return slog.Value{}
	}

	x, ok := indirect[T](v)
	if !ok {
		return slog.AnyValue(nil)
	}

	switch {
	case oneof.IsOneOf4[T, int, int8, int16, int32](), oneof.Is[T, int64]():
		return slog.Int64Value(signed(x))
	case oneof.IsOneOf4[T, uint, uint8, uint16, uint32](), oneof.Is[T, uint64]():
		return slog.Uint64Value(unsigned(x))
	case oneof.IsOneOf2[T, float32, float64]():
		return slog.Float64Value(float(x))
	case oneof.Is[T, string]():
		return slog.StringValue(x.(string))
	case oneof.Is[T, bool]():
		return slog.BoolValue(x.(bool))
	case oneof.Is[T, error]():
		if err, ok := x.(error); ok {
			return slog.StringValue(err.Error())
		}
		return slog.AnyValue(nil)
	case oneof.Is[T, fmt.Stringer]():
		if s, ok := x.(fmt.Stringer); ok {
			return slog.StringValue(s.String())
		}
		return slog.AnyValue(nil)
	}
	return slog.AnyValue(v)
}

// indirect follows v if T is a pointer type. It reports false for a nil pointer.
func indirect[T any](v T) (any, bool) {
	if reflect.TypeFor[T]().Kind() != reflect.Pointer {
		return v, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return nil, false
	}
	return rv.Elem().Interface(), true
}

func signed(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}
	return 0
}

func unsigned(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	}
	return 0
}

func float(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}
