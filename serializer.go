package opensearch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Serializer converts structured values to and from their wire form. The
// request pipeline needs only Encode; Decode is provided for response
// handling and helpers.
type Serializer interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// JSONSerializer is the default Serializer.
type JSONSerializer struct{}

// Encode marshals v as JSON. Values already in serialized form ([]byte,
// string, json.RawMessage) pass through unchanged.
func (JSONSerializer) Encode(v any) ([]byte, error) {
	if raw, ok := rawBody(v); ok {
		return raw, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return b, nil
}

// Decode unmarshals JSON data into v.
func (JSONSerializer) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// rawBody reports whether v is already serialized and returns its bytes.
func rawBody(v any) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case json.RawMessage:
		return b, true
	case string:
		return []byte(b), true
	}
	return nil, false
}

// encodeBody produces the wire payload for a non-bulk body. Bodies that
// are already serialized bypass the Serializer entirely, whichever
// implementation is installed.
func encodeBody(s Serializer, body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if raw, ok := rawBody(body); ok {
		return raw, nil
	}
	if r, ok := body.(io.Reader); ok {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		return b, nil
	}
	b, err := s.Encode(body)
	if err != nil {
		return nil, wrapSerialization(err)
	}
	return b, nil
}

// encodeBulkBody frames a bulk payload as newline-delimited records.
//
// A payload that is already a serialized stream passes through with at
// most a final terminator added, so re-framing an existing stream is
// byte-identical. A sequence of actions is serialized element by element
// in caller order, each record followed by exactly one line terminator.
// The last record is terminated too; the server's streaming parser
// requires it.
func encodeBulkBody(s Serializer, body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if r, ok := body.(io.Reader); ok {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		return terminate(b), nil
	}
	if raw, ok := rawBody(body); ok {
		return terminate(raw), nil
	}

	actions, ok := body.([]any)
	if !ok {
		return nil, &SerializationError{Err: fmt.Errorf("bulk body must be a []any sequence or a serialized stream, got %T", body)}
	}
	var buf bytes.Buffer
	for _, action := range actions {
		record, ok := rawBody(action)
		if !ok {
			var err error
			record, err = s.Encode(action)
			if err != nil {
				return nil, wrapSerialization(err)
			}
		}
		buf.Write(bytes.TrimRight(record, "\n"))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// wrapSerialization tags err as a serialization failure unless a custom
// Serializer already did.
func wrapSerialization(err error) error {
	if errors.Is(err, ErrSerialization) {
		return err
	}
	return &SerializationError{Err: err}
}

// terminate ensures b ends with exactly one line terminator.
func terminate(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return b
	}
	return append(b, '\n')
}
