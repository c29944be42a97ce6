package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/pebbles-game/internal/model"
)

// Decode reads exactly one JSON object from r into v.
// Unknown fields, mistyped values and trailing data are all ErrDecodeFailure.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", model.ErrDecodeFailure)
		}
		return fmt.Errorf("%w: %s", model.ErrDecodeFailure, err.Error())
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", model.ErrDecodeFailure)
	}
	return nil
}

// DecodeStart decodes a start request into a GameConfig
func DecodeStart(r io.Reader) (model.GameConfig, error) {
	var req StartRequest
	if err := Decode(r, &req); err != nil {
		return model.GameConfig{}, err
	}
	return req.ToConfig()
}

// DecodeAction decodes an action request into a model.Action
func DecodeAction(r io.Reader) (model.Action, error) {
	var req ActionRequest
	if err := Decode(r, &req); err != nil {
		return nil, err
	}
	return req.ToAction()
}
