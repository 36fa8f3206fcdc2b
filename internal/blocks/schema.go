package blocks

import (
	"reflect"
	"sort"
)

// Kind classifies a props key by the kind of value it holds, which is all a
// property editor needs to pick an input.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindAsset   Kind = "asset"
)

// Field describes one editable key of a props struct.
type Field struct {
	Key   string
	Kind  Kind
	Value any
}

// Schema introspects p. Block-specific keys are always listed; shared style
// keys are listed only when p sets them, so a template's default props
// decide which overrides its editor offers.
func Schema(p Props) []Field {
	if p == nil {
		return nil
	}
	if u, ok := p.(*Unknown); ok {
		return rawSchema(u.Raw)
	}
	v := reflect.Indirect(reflect.ValueOf(p))
	if v.Kind() != reflect.Struct {
		return nil
	}
	var fields []Field
	collectFields(v, false, &fields)
	return fields
}

func collectFields(v reflect.Value, styleOnly bool, out *[]Field) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collectFields(fv, true, out)
			continue
		}
		if styleOnly && fv.IsZero() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		*out = append(*out, Field{Key: name, Kind: kindOf(sf.Type), Value: toValue(fv)})
	}
}

func kindOf(t reflect.Type) Kind {
	if t == assetType {
		return KindAsset
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.String:
		return KindString
	}
	if isNumeric(t.Kind()) {
		return KindNumber
	}
	return KindString
}

func rawSchema(raw map[string]any) []Field {
	fields := make([]Field, 0, len(raw))
	for key, value := range raw {
		kind := KindString
		switch value.(type) {
		case bool:
			kind = KindBoolean
		case float64, int:
			kind = KindNumber
		case []any:
			kind = KindArray
		}
		fields = append(fields, Field{Key: key, Kind: kind, Value: value})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}
