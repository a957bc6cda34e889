package model

import (
	"encoding/base64"
	"fmt"
	"path"
)

// Receipt is the backend's JSON envelope around a generated PDF.
type Receipt struct {
	PDF      string `json:"pdf"`
	Filename string `json:"filename"`
}

func (r Receipt) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.PDF)
	if err != nil {
		return nil, fmt.Errorf("decode receipt: %w", err)
	}
	return data, nil
}

// SafeFilename strips directories and falls back to a generic name.
func (r Receipt) SafeFilename() string {
	name := path.Base(r.Filename)
	if name == "." || name == "/" || name == "" {
		return "receipt.pdf"
	}
	return name
}
