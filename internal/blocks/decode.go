package blocks

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var (
	assetType = reflect.TypeOf(Asset{})
	// mapType is the raw shape a props bag arrives in.
	mapType = reflect.TypeOf(map[string]any{})
)

// Decode builds the typed props of t from a raw props bag. Values of the
// wrong shape are coerced the way the storefront has always read them: a
// non-array where an array belongs becomes empty, unparsable numbers become
// zero, and non-empty strings are truthy. Keys the type does not know are
// returned separately so they survive a save.
func Decode(t Type, raw map[string]any) (Props, map[string]any) {
	target := newProps(t)
	if target == nil {
		return &Unknown{Type: t, Raw: copyMap(raw)}, nil
	}
	if len(raw) == 0 {
		return target, nil
	}

	var md mapstructure.Metadata
	// Decoding never fails hard: hooks coerce every mismatch, and whatever
	// mapstructure still rejects is left at its zero value.
	_ = decodeInto(raw, target, &md)

	var extra map[string]any
	for _, key := range md.Unused {
		if strings.Contains(key, ".") || strings.Contains(key, "[") {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = raw[key]
	}

	return target, extra
}

func decodeInto(input any, target any, md *mapstructure.Metadata) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			assetHook,
			shapeHook,
			numberHook,
			boolHook,
			stringHook,
		),
		WeaklyTypedInput: true,
		Squash:           true,
		TagName:          "json",
		Metadata:         md,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func assetHook(from, to reflect.Type, data any) (any, error) {
	if to != assetType {
		return data, nil
	}
	switch v := data.(type) {
	case Asset:
		return v, nil
	case string:
		return ParseAsset(v), nil
	case map[string]any:
		for _, key := range []string{"url", "src"} {
			if s, ok := v[key].(string); ok {
				return ParseAsset(s), nil
			}
		}
	}
	return Asset{}, nil
}

// shapeHook replaces container mismatches with empty values of the target type.
func shapeHook(from, to reflect.Type, data any) (any, error) {
	if data == nil {
		return data, nil
	}
	fromKind := from.Kind()
	switch to.Kind() {
	case reflect.Slice:
		if fromKind != reflect.Slice && fromKind != reflect.Array {
			return reflect.MakeSlice(to, 0, 0).Interface(), nil
		}
	case reflect.Map:
		if fromKind != reflect.Map {
			return reflect.MakeMap(to).Interface(), nil
		}
	case reflect.Struct:
		if to != assetType && fromKind != reflect.Map && from != to {
			return reflect.Zero(to).Interface(), nil
		}
	}
	return data, nil
}

func numberHook(from, to reflect.Type, data any) (any, error) {
	if !isNumeric(to.Kind()) {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, nil
		}
		return f, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, nil
		}
	}
	if k := from.Kind(); k == reflect.Slice || k == reflect.Map {
		return 0, nil
	}
	return data, nil
}

func boolHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Bool {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return v != "", nil
	}
	if k := from.Kind(); k == reflect.Slice || k == reflect.Map {
		return true, nil
	}
	return data, nil
}

func stringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch v := data.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	}
	if k := from.Kind(); k == reflect.Slice || k == reflect.Map || k == reflect.Struct {
		return "", nil
	}
	return data, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func copyMap(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
