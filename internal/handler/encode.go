package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
)

const encodeBufferSize = 512

var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, encodeBufferSize)) },
}

// encodeJSON renders payload into a pooled buffer and copies it to w in a single write
func encodeJSON(w io.Writer, payload any) error {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
