package domain

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Extra keeps JSON members a record does not model so they survive a
// decode/encode round trip. Nothing in the pipeline reads it.
type Extra map[string]json.RawMessage

func unmarshalWithExtra[T any](data []byte, v *T, extra *Extra) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	// encoding/json matches member names case-insensitively
	modelled := jsonFields(reflect.TypeOf(*v))
	for key := range members {
		for _, name := range modelled {
			if strings.EqualFold(key, name) {
				delete(members, key)
				break
			}
		}
	}

	*extra = nil
	if len(members) > 0 {
		*extra = members
	}
	return nil
}

func marshalWithExtra[T any](v T, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for name, raw := range extra {
		if _, ok := members[name]; !ok {
			members[name] = raw
		}
	}
	return json.Marshal(members)
}

// jsonFields lists the JSON member names modelled by a struct type,
// including those promoted from embedded structs.
func jsonFields(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if f.Anonymous && f.Type.Kind() == reflect.Struct && tag == "" {
			names = append(names, jsonFields(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}
