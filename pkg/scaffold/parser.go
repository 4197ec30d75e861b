package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// object is a JSON object kept raw so keys are matched exactly.
// encoding/json matches struct tags case-insensitively.
type object map[string]json.RawMessage

// Parse reads a scaffold JSON file and returns a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Decode(file)
	if err != nil {
		return nil, err
	}
	model.Source = filename
	return model, nil
}

// Decode reads a scaffold JSON document from r.
// Any missing or malformed part aborts the whole decode.
func Decode(r io.Reader) (*Model, error) {
	dec := json.NewDecoder(r)

	var doc object
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode JSON: unexpected data after the top-level value")
	}

	raw, ok := doc["parts"]
	if !ok || isNull(raw) {
		return nil, ErrMissingParts
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: parts: %w", err)
	}

	model := NewModel("")
	for i, rec := range records {
		part, err := decodePart(i, rec)
		if err != nil {
			return nil, err
		}
		model.AddPart(part)
	}

	return model, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func decodePart(index int, raw json.RawMessage) (Part, error) {
	var fields object
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Part{}, &PartError{Index: index, Field: "part", Reason: "is not an object"}
	}

	var part Part
	var err error

	if part.Name, err = fields.text(index, "name"); err != nil {
		return Part{}, err
	}
	if part.Width, err = fields.number(index, "width"); err != nil {
		return Part{}, err
	}
	if part.Depth, err = fields.number(index, "depth"); err != nil {
		return Part{}, err
	}
	if part.Height, err = fields.number(index, "height"); err != nil {
		return Part{}, err
	}
	if part.ECSBox, err = fields.matrix(index, "ecsBox"); err != nil {
		return Part{}, err
	}

	return part, nil
}

// lookup returns the raw value of a required key
func (o object) lookup(index int, key string) (json.RawMessage, error) {
	raw, ok := o[key]
	if !ok {
		return nil, &PartError{Index: index, Field: key, Reason: "is missing"}
	}
	return raw, nil
}

func (o object) text(index int, key string) (string, error) {
	raw, err := o.lookup(index, key)
	if err != nil {
		return "", err
	}

	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", &PartError{Index: index, Field: key, Reason: "must be a string"}
	}
	return s, nil
}

func (o object) number(index int, key string) (float64, error) {
	raw, err := o.lookup(index, key)
	if err != nil {
		return 0, err
	}

	var v float64
	if isNull(raw) || json.Unmarshal(raw, &v) != nil {
		return 0, &PartError{Index: index, Field: key, Reason: "must be a number"}
	}
	return v, nil
}

func (o object) matrix(index int, key string) ([12]float64, error) {
	var m [12]float64

	raw, err := o.lookup(index, key)
	if err != nil {
		return m, err
	}

	var values []*float64
	if isNull(raw) || json.Unmarshal(raw, &values) != nil {
		return m, &PartError{Index: index, Field: key, Reason: "must be an array of numbers"}
	}
	if len(values) != len(m) {
		return m, &PartError{
			Index:  index,
			Field:  key,
			Reason: fmt.Sprintf("must hold 12 numbers, got %d", len(values)),
		}
	}

	for i, v := range values {
		if v == nil {
			return m, &PartError{Index: index, Field: key, Reason: fmt.Sprintf("entry %d is null", i)}
		}
		m[i] = *v
	}
	return m, nil
}
