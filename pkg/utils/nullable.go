package utils

import (
	"bytes"
	"encoding/json"
)

// NullableString tells an absent JSON field apart from an explicit null
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the field is present in the document
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

// IsClear reports whether the field was sent as null or an empty string
func (n NullableString) IsClear() bool {
	return n.Set && (n.Value == nil || *n.Value == "")
}
