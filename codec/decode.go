package codec

import (
	"errors"
	"math"
	"reflect"
	"time"

	"go.trai.ch/zerr"
)

// As decodes a wire value into T, guided by T's structure. Concrete struct
// targets need no registration; `any` targets (including `any` slots inside
// maps and slices) fall back to generic forms and resolve named objects
// through types. Failures carry ErrDecode.
func As[T any](v Value, types *Types) (T, error) {
	out, err := decodeTo(reflect.TypeFor[T](), v, types)
	if err != nil {
		var zero T
		return zero, err
	}
	return out.Interface().(T), nil
}

// Interface decodes a wire value into its generic Go form: int64, uint64,
// float64, string, bool, []byte, time.Time, time.Duration, []any,
// map[string]any, or a registered type for named objects. Anonymous
// objects decode to map[string]any.
func (v Value) Interface(types *Types) (any, error) {
	switch v.Kind {
	case KindNil:
		return nil, nil
	case KindBool:
		return v.Bool, nil
	case KindInt:
		return v.Int, nil
	case KindUint:
		return v.Uint, nil
	case KindFloat:
		return v.Float, nil
	case KindString:
		return v.Str, nil
	case KindBytes:
		return v.Bytes, nil
	case KindTime:
		return parseWireTime(v.Time)
	case KindDuration:
		return time.Duration(v.Dur), nil
	case KindList:
		out := make([]any, len(v.Elems))
		for i, ev := range v.Elems {
			gv, err := ev.Interface(types)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case KindMap:
		out := make(map[string]any, len(v.Entries))
		for k, ev := range v.Entries {
			gv, err := ev.Interface(types)
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	case KindObject:
		if v.Type == "" {
			out := make(map[string]any, len(v.Fields))
			for k, fv := range v.Fields {
				gv, err := fv.Interface(types)
				if err != nil {
					return nil, err
				}
				out[k] = gv
			}
			return out, nil
		}
		e, ok := types.entry(v.Type)
		if !ok {
			return nil, errors.Join(ErrDecode, ErrUnknownType, zerr.With(zerr.New("no type registered for object"), "type", v.Type))
		}
		rv, err := decodeTo(e.rt, v, types)
		if err != nil {
			return nil, err
		}
		if e.ptr {
			p := reflect.New(e.rt)
			p.Elem().Set(rv)
			return p.Interface(), nil
		}
		return rv.Interface(), nil
	default:
		return nil, errors.Join(ErrDecode, zerr.With(zerr.New("unknown wire kind"), "kind", string(v.Kind)))
	}
}

func decodeTo(t reflect.Type, v Value, types *Types) (reflect.Value, error) {
	if t.Kind() == reflect.Interface {
		if t.NumMethod() != 0 {
			return reflect.Value{}, shapeErr(t, v)
		}
		out := reflect.New(t).Elem()
		g, err := v.Interface(types)
		if err != nil {
			return reflect.Value{}, err
		}
		if g != nil {
			out.Set(reflect.ValueOf(g))
		}
		return out, nil
	}

	switch v.Kind {
	case KindNil:
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, shapeErr(t, v)

	case KindBool:
		if t.Kind() != reflect.Bool {
			return reflect.Value{}, shapeErr(t, v)
		}
		out := reflect.New(t).Elem()
		out.SetBool(v.Bool)
		return out, nil

	case KindInt:
		out := reflect.New(t).Elem()
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if t == durationType {
				return reflect.Value{}, shapeErr(t, v)
			}
			if out.OverflowInt(v.Int) {
				return reflect.Value{}, overflowErr(t, v)
			}
			out.SetInt(v.Int)
			return out, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v.Int < 0 || out.OverflowUint(uint64(v.Int)) {
				return reflect.Value{}, overflowErr(t, v)
			}
			out.SetUint(uint64(v.Int))
			return out, nil
		}
		return reflect.Value{}, shapeErr(t, v)

	case KindUint:
		out := reflect.New(t).Elem()
		switch t.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if out.OverflowUint(v.Uint) {
				return reflect.Value{}, overflowErr(t, v)
			}
			out.SetUint(v.Uint)
			return out, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if v.Uint > math.MaxInt64 || out.OverflowInt(int64(v.Uint)) {
				return reflect.Value{}, overflowErr(t, v)
			}
			out.SetInt(int64(v.Uint))
			return out, nil
		}
		return reflect.Value{}, shapeErr(t, v)

	case KindFloat:
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			out := reflect.New(t).Elem()
			if out.OverflowFloat(v.Float) {
				return reflect.Value{}, overflowErr(t, v)
			}
			out.SetFloat(v.Float)
			return out, nil
		}
		return reflect.Value{}, shapeErr(t, v)

	case KindString:
		if t.Kind() != reflect.String {
			return reflect.Value{}, shapeErr(t, v)
		}
		out := reflect.New(t).Elem()
		out.SetString(v.Str)
		return out, nil

	case KindBytes:
		if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.Uint8 {
			return reflect.Value{}, shapeErr(t, v)
		}
		out := reflect.New(t).Elem()
		out.SetBytes(v.Bytes)
		return out, nil

	case KindTime:
		if t != timeType {
			return reflect.Value{}, shapeErr(t, v)
		}
		tm, err := parseWireTime(v.Time)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(tm), nil

	case KindDuration:
		if t != durationType {
			return reflect.Value{}, shapeErr(t, v)
		}
		return reflect.ValueOf(time.Duration(v.Dur)), nil

	case KindList:
		switch t.Kind() {
		case reflect.Slice:
			out := reflect.MakeSlice(t, len(v.Elems), len(v.Elems))
			for i, ev := range v.Elems {
				el, err := decodeTo(t.Elem(), ev, types)
				if err != nil {
					return reflect.Value{}, err
				}
				out.Index(i).Set(el)
			}
			return out, nil
		case reflect.Array:
			if t.Len() != len(v.Elems) {
				return reflect.Value{}, shapeErr(t, v)
			}
			out := reflect.New(t).Elem()
			for i, ev := range v.Elems {
				el, err := decodeTo(t.Elem(), ev, types)
				if err != nil {
					return reflect.Value{}, err
				}
				out.Index(i).Set(el)
			}
			return out, nil
		}
		return reflect.Value{}, shapeErr(t, v)

	case KindMap:
		if t.Kind() != reflect.Map || t.Key().Kind() != reflect.String {
			return reflect.Value{}, shapeErr(t, v)
		}
		out := reflect.MakeMapWithSize(t, len(v.Entries))
		for k, ev := range v.Entries {
			mv, err := decodeTo(t.Elem(), ev, types)
			if err != nil {
				return reflect.Value{}, err
			}
			mk := reflect.New(t.Key()).Elem()
			mk.SetString(k)
			out.SetMapIndex(mk, mv)
		}
		return out, nil

	case KindObject:
		if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
			inner, err := decodeTo(t.Elem(), v, types)
			if err != nil {
				return reflect.Value{}, err
			}
			p := reflect.New(t.Elem())
			p.Elem().Set(inner)
			return p, nil
		}
		if t.Kind() != reflect.Struct {
			return reflect.Value{}, shapeErr(t, v)
		}
		out := reflect.New(t).Elem()
		for name, fv := range v.Fields {
			f, ok := t.FieldByName(name)
			if !ok || !f.IsExported() {
				continue
			}
			target, err := out.FieldByIndexErr(f.Index)
			if err != nil {
				return reflect.Value{}, errors.Join(ErrDecode, zerr.With(zerr.New("field is unreachable"), "field", name))
			}
			val, err := decodeTo(f.Type, fv, types)
			if err != nil {
				return reflect.Value{}, err
			}
			target.Set(val)
		}
		return out, nil

	default:
		return reflect.Value{}, errors.Join(ErrDecode, zerr.With(zerr.New("unknown wire kind"), "kind", string(v.Kind)))
	}
}

func parseWireTime(s string) (time.Time, error) {
	tm, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Join(ErrDecode, zerr.With(zerr.New("invalid timestamp"), "value", s))
	}
	return tm, nil
}

func shapeErr(t reflect.Type, v Value) error {
	return errors.Join(ErrDecode, zerr.With(zerr.With(zerr.New("wire value does not fit target type"), "kind", string(v.Kind)), "target", t.String()))
}

func overflowErr(t reflect.Type, v Value) error {
	return errors.Join(ErrDecode, zerr.With(zerr.With(zerr.New("wire value overflows target type"), "kind", string(v.Kind)), "target", t.String()))
}
