package blocks

import (
	"reflect"
	"strings"
)

// ToMap converts props into the raw bag form, honoring json tag names and
// omitting zero values. Unknown props return a copy of their raw bag.
func ToMap(p Props) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	if u, ok := p.(*Unknown); ok {
		return copyMap(u.Raw)
	}
	v := reflect.Indirect(reflect.ValueOf(p))
	out, _ := toValue(v).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	return out
}

func toValue(v reflect.Value) any {
	if v.Type() == assetType {
		a := v.Interface().(Asset)
		if a.IsZero() {
			return nil
		}
		return a.String()
	}

	switch v.Kind() {
	case reflect.Struct:
		out := make(map[string]any)
		writeStruct(v, out)
		return out
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		items := make([]any, v.Len())
		for i := range items {
			items[i] = toValue(v.Index(i))
		}
		return items
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	}

	if v.IsZero() {
		return nil
	}
	return v.Interface()
}

func writeStruct(v reflect.Value, out map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			writeStruct(v.Field(i), out)
			continue
		}
		name := jsonName(field)
		if name == "" {
			continue
		}
		if value := toValue(v.Field(i)); value != nil {
			out[name] = value
		}
	}
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// CloneProps deep-copies props so slices are not shared.
func CloneProps(p Props) Props {
	if p == nil {
		return nil
	}
	if u, ok := p.(*Unknown); ok {
		return &Unknown{Type: u.Type, Raw: copyMap(u.Raw)}
	}
	src := reflect.ValueOf(p)
	if src.Kind() != reflect.Ptr {
		return p
	}
	dst := reflect.New(src.Elem().Type())
	dst.Elem().Set(src.Elem())
	deepCopy(dst.Elem())
	return dst.Interface().(Props)
}

func deepCopy(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == assetType {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				deepCopy(v.Field(i))
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			return
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(cp, v)
		for i := 0; i < cp.Len(); i++ {
			deepCopy(cp.Index(i))
		}
		v.Set(cp)
	}
}

// Assets lists every asset referenced by props, empty ones excluded.
func Assets(p Props) []Asset {
	var out []Asset
	visitAssets(p, func(a *Asset) {
		if !a.IsZero() {
			out = append(out, *a)
		}
	})
	return out
}

// PendingAssets lists the assets of props that are not uploaded yet.
func PendingAssets(p Props) []Asset {
	var out []Asset
	for _, a := range Assets(p) {
		if a.IsPending() {
			out = append(out, a)
		}
	}
	return out
}

// ResolveAsset returns a copy of props in which every pending asset with the
// given handle is replaced by the persisted url, plus the replacement count.
func ResolveAsset(p Props, handle, url string) (Props, int) {
	cp := CloneProps(p)
	handle = strings.TrimPrefix(handle, pendingPrefix)
	replaced := 0
	visitAssets(cp, func(a *Asset) {
		if a.IsPending() && a.Handle() == handle {
			*a = Persisted(url)
			replaced++
		}
	})
	return cp, replaced
}

func visitAssets(p Props, fn func(*Asset)) {
	if p == nil {
		return
	}
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	walkAssets(v.Elem(), fn)
}

func walkAssets(v reflect.Value, fn func(*Asset)) {
	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == assetType {
			if v.CanAddr() {
				fn(v.Addr().Interface().(*Asset))
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				walkAssets(v.Field(i), fn)
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			walkAssets(v.Index(i), fn)
		}
	}
}
