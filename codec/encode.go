package codec

import (
	"errors"
	"reflect"
	"time"

	"go.trai.ch/zerr"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// FromGo converts a Go value into the wire tree. Primitives, byte slices,
// times, durations, slices, arrays, string-keyed maps, pointers and structs
// are supported; anything else (funcs, channels, complex numbers) fails
// with ErrUnsupportedValue.
//
// Structs become objects. When types knows the struct's type, the object
// carries its registered name so it can later be decoded into an `any`
// slot; unregistered structs encode anonymously and decode to plain maps
// unless a concrete target type is supplied. types may be nil.
func FromGo(v any, types *Types) (Value, error) {
	if v == nil {
		return Nil(), nil
	}
	if val, ok := v.(Value); ok {
		return val, nil
	}
	return fromReflect(reflect.ValueOf(v), types)
}

func fromReflect(rv reflect.Value, types *Types) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Value{Kind: KindBool, Bool: rv.Bool()}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Type() == durationType {
			return Value{Kind: KindDuration, Dur: rv.Int()}, nil
		}
		return Value{Kind: KindInt, Int: rv.Int()}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{Kind: KindUint, Uint: rv.Uint()}, nil

	case reflect.Float32, reflect.Float64:
		return Value{Kind: KindFloat, Float: rv.Float()}, nil

	case reflect.String:
		return Value{Kind: KindString, Str: rv.String()}, nil

	case reflect.Slice:
		if rv.IsNil() {
			return Nil(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Value{Kind: KindBytes, Bytes: rv.Bytes()}, nil
		}
		return listValue(rv, types)

	case reflect.Array:
		return listValue(rv, types)

	case reflect.Map:
		if rv.IsNil() {
			return Nil(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, unsupportedValue(rv.Type())
		}
		entries := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ev, err := fromReflect(iter.Value(), types)
			if err != nil {
				return Value{}, err
			}
			entries[iter.Key().String()] = ev
		}
		return Value{Kind: KindMap, Entries: entries}, nil

	case reflect.Pointer:
		if rv.IsNil() {
			return Nil(), nil
		}
		return fromReflect(rv.Elem(), types)

	case reflect.Interface:
		if rv.IsNil() {
			return Nil(), nil
		}
		return fromReflect(rv.Elem(), types)

	case reflect.Struct:
		if rv.Type() == timeType {
			t := rv.Interface().(time.Time)
			return Value{Kind: KindTime, Time: t.Format(time.RFC3339Nano)}, nil
		}
		return objectValue(rv, types)

	default:
		return Value{}, unsupportedValue(rv.Type())
	}
}

func listValue(rv reflect.Value, types *Types) (Value, error) {
	elems := make([]Value, rv.Len())
	for i := range elems {
		ev, err := fromReflect(rv.Index(i), types)
		if err != nil {
			return Value{}, err
		}
		elems[i] = ev
	}
	return Value{Kind: KindList, Elems: elems}, nil
}

func objectValue(rv reflect.Value, types *Types) (Value, error) {
	rt := rv.Type()
	fields := make(map[string]Value, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fv, err := fromReflect(rv.Field(i), types)
		if err != nil {
			return Value{}, err
		}
		fields[f.Name] = fv
	}
	name, _ := types.NameOf(rt)
	return Value{Kind: KindObject, Type: name, Fields: fields}, nil
}

func unsupportedValue(t reflect.Type) error {
	return errors.Join(ErrUnsupportedValue, zerr.With(zerr.New("no wire representation for Go type"), "type", t.String()))
}
