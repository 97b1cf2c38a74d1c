package inventory

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// fields is a pack decoded one level deep, for key-presence checks.
type fields map[string]json.RawMessage

func decodeFields(raw []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// missing returns the first key in keys absent from f.
func (f fields) missing(keys []string) (string, bool) {
	for _, k := range keys {
		if _, ok := f[k]; !ok {
			return k, true
		}
	}
	return "", false
}

// isArray reports whether key holds a JSON array (null is not an array).
func (f fields) isArray(key string) bool {
	v := bytes.TrimSpace(f[key])
	return len(v) > 0 && v[0] == '['
}

// str returns the value of key when it is a JSON string.
func (f fields) str(key string) (string, bool) {
	v := bytes.TrimSpace(f[key])
	if len(v) == 0 || v[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// text renders the value of key for error messages: strings are quoted,
// anything else is shown as its JSON text.
func (f fields) text(key string) string {
	if s, ok := f.str(key); ok {
		return strconv.Quote(s)
	}
	v := bytes.TrimSpace(f[key])
	if len(v) == 0 {
		return "null"
	}
	return string(v)
}

// objects decodes key as an object of objects, e.g. sponsorships keyed by
// practice. ok is false when key is absent, null, or another shape.
func (f fields) objects(key string) (map[string]fields, bool) {
	v := bytes.TrimSpace(f[key])
	if len(v) == 0 || v[0] != '{' {
		return nil, false
	}
	var out map[string]fields
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, false
	}
	return out, true
}
