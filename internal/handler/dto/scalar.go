package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Scalar is a JSON string, number or boolean stored in its textual form.
// Numbers keep their exact decimal representation.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = Scalar(t)
	case json.Number:
		*s = Scalar(t.String())
	case bool:
		*s = Scalar(strconv.FormatBool(t))
	default:
		return errors.New("value must be a string, number or boolean")
	}
	return nil
}

// String returns the textual form.
func (s Scalar) String() string {
	return string(s)
}
