package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

// fieldsPerGroup keeps each page of the property form on one screen.
const fieldsPerGroup = 6

// editor is the property form of one component. Values are bound by
// pointer so the form can be driven by huh or set directly.
type editor struct {
	id     string
	title  string
	fields []editorField
	form   *huh.Form
}

type editorField struct {
	key      string
	kind     blocks.Kind
	original string
	text     *string
	flag     *bool
}

// pendingUpload is an asset field whose new value names a local file.
type pendingUpload struct {
	Key  string
	Path string
}

func newEditor(c blocks.Component, title string) *editor {
	e := &editor{id: c.ID, title: title}
	for _, f := range blocks.Schema(c.Props) {
		ef, ok := newEditorField(f)
		if !ok {
			continue
		}
		e.fields = append(e.fields, ef)
	}
	e.form = e.buildForm()
	return e
}

func newEditorField(f blocks.Field) (editorField, bool) {
	ef := editorField{key: f.Key, kind: f.Kind}
	switch f.Kind {
	case blocks.KindBoolean:
		v, _ := f.Value.(bool)
		ef.flag = &v
		return ef, true
	case blocks.KindArray:
		if f.Value == nil {
			ef.original = "[]"
		} else {
			data, err := json.MarshalIndent(f.Value, "", "  ")
			if err != nil {
				// Items with pending uploads cannot be edited as JSON.
				return ef, false
			}
			ef.original = string(data)
		}
	case blocks.KindAsset:
		if a, ok := f.Value.(blocks.Asset); ok {
			ef.original = a.String()
		}
	default:
		if f.Value != nil {
			ef.original = fmt.Sprint(f.Value)
		}
	}
	text := ef.original
	ef.text = &text
	return ef, true
}

func (e *editor) buildForm() *huh.Form {
	var groups []*huh.Group
	var current []huh.Field
	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, huh.NewGroup(current...).Title(e.title))
		current = nil
	}
	for _, f := range e.fields {
		current = append(current, f.input())
		if len(current) == fieldsPerGroup {
			flush()
		}
	}
	flush()
	if len(groups) == 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewNote().Title(e.title).Description("This block has no editable properties."),
		))
	}
	return huh.NewForm(groups...).WithShowHelp(true)
}

func (f editorField) input() huh.Field {
	label := fieldLabel(f.key)
	switch f.kind {
	case blocks.KindBoolean:
		return huh.NewConfirm().
			Title(label).
			Value(f.flag)
	case blocks.KindNumber:
		return huh.NewInput().
			Title(label).
			Value(f.text).
			Validate(validateNumber)
	case blocks.KindArray:
		return huh.NewText().
			Title(label).
			Description("JSON array").
			Lines(6).
			Value(f.text).
			Validate(validateArray)
	case blocks.KindAsset:
		return huh.NewInput().
			Title(label).
			Description("Image URL or local file to upload").
			Value(f.text)
	default:
		return huh.NewInput().
			Title(label).
			Value(f.text)
	}
}

// apply merges the form values into c's props. Asset fields pointing at a
// local file are left unchanged and returned as uploads to start.
func (e *editor) apply(c blocks.Component) (blocks.Props, []pendingUpload, error) {
	raw := c.PropsMap()
	var uploads []pendingUpload
	for _, f := range e.fields {
		switch f.kind {
		case blocks.KindBoolean:
			raw[f.key] = *f.flag
		case blocks.KindNumber:
			value := strings.TrimSpace(*f.text)
			if value == "" {
				raw[f.key] = 0
				continue
			}
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", f.key, err)
			}
			raw[f.key] = n
		case blocks.KindArray:
			if *f.text == f.original {
				continue
			}
			var items []any
			if err := json.Unmarshal([]byte(*f.text), &items); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", f.key, err)
			}
			raw[f.key] = items
		case blocks.KindAsset:
			value := strings.TrimSpace(*f.text)
			if value == f.original {
				continue
			}
			if isLocalFile(value) {
				uploads = append(uploads, pendingUpload{Key: f.key, Path: value})
				continue
			}
			raw[f.key] = value
		default:
			raw[f.key] = *f.text
		}
	}
	props, _ := blocks.Decode(c.Type, raw)
	return props, uploads, nil
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateArray(s string) error {
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return fmt.Errorf("must be a JSON array: %w", err)
	}
	return nil
}

func isLocalFile(value string) bool {
	if value == "" || strings.Contains(value, "://") || strings.HasPrefix(value, "blob:") || strings.HasPrefix(value, "data:") {
		return false
	}
	info, err := os.Stat(value)
	return err == nil && info.Mode().IsRegular()
}

// fieldLabel turns a camelCase props key into a form label.
func fieldLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteString(strings.ToUpper(string(r)))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
