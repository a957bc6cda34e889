package model

import (
	"bytes"
	"encoding/json"
)

// Ref links to another record. The backend sends either the bare id or the
// populated record; only the id is kept.
type Ref string

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '{' {
		var populated struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(b, &populated); err != nil {
			return err
		}
		*r = Ref(populated.ID)
		return nil
	}
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	*r = Ref(id)
	return nil
}
