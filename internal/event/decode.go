package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process publishers hand over the
// typed struct (or a pointer to it) directly; payloads read back from the dead
// letter file or the event log arrive as raw JSON or generic maps and are
// converted through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T

	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return out, nil
	case json.RawMessage:
		return out, unmarshalPayload(v, &out)
	case []byte:
		return out, unmarshalPayload(v, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("%s: %w", ErrContextEncodePayload, err)
	}
	return out, unmarshalPayload(data, &out)
}

func unmarshalPayload(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDecodePayload, err)
	}
	return nil
}
