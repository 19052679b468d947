package server

import (
	"bufio"
	"encoding/json"
	"fmt"
)

// maxFrameBytes bounds a single newline-delimited JSON frame. spec.md §6
// uses 65536 bytes as its reference frame size; a command or response
// larger than that is treated as malformed input.
const maxFrameBytes = 65536

// readFrame reads one newline-terminated JSON object from r and decodes it
// into a raw map, the wire representation every capsule/command/response
// is encoded to and decoded from.
func readFrame(r *bufio.Reader) (map[string]any, error) {
	line, err := r.ReadSlice('\n')
	if err != nil {
		return nil, err
	}
	if len(line) > maxFrameBytes {
		return nil, fmt.Errorf("frame exceeds %d bytes", maxFrameBytes)
	}

	var raw map[string]any
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	return raw, nil
}

// writeFrame encodes raw as JSON followed by a newline.
func writeFrame(w *bufio.Writer, raw map[string]any) error {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	if len(encoded) > maxFrameBytes {
		return fmt.Errorf("frame exceeds %d bytes", maxFrameBytes)
	}
	if _, err := w.Write(encoded); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
