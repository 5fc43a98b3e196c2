package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"
)

func MarshalMessage(format string, r *Records) (*bytes.Reader, error) {
	if format != Json {
		return nil, errors.Errorf("unsupported output format: %s", format)
	}

	out, err := json.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	return bytes.NewReader(out), nil
}

func UnmarshalMessage(format string, reader io.Reader, r *Records) error {
	if format != Json {
		return errors.Errorf("unsupported input format: %s", format)
	}

	dec := ffjson.NewDecoder()
	if err := dec.DecodeReader(reader, r); err != nil {
		return err
	}

	if r.Len() == 0 {
		return fmt.Errorf("%s Reason %s", "Failed to unmarshal message:", "empty data")
	}
	return nil
}
