package transport

import (
	"bufio"
	"bytes"
	"io"
)

// doneSentinel terminates a chat completion stream.
var doneSentinel = []byte("[DONE]")

// Event is a single decoded server-sent event.
type Event struct {
	Type string
	Data []byte
}

// SSEDecoder incrementally reads server-sent events from a response body.
// It is single-consumer and forward-only; once Next returns false the
// decoder is exhausted.
type SSEDecoder struct {
	scanner *bufio.Scanner
	body    io.ReadCloser
	event   Event
	err     error
	done    bool
	sawDone bool
}

// NewSSEDecoder wraps a response body in a decoder. The decoder takes
// ownership of the body; Close releases it.
func NewSSEDecoder(body io.ReadCloser) *SSEDecoder {
	scanner := bufio.NewScanner(body)
	// Individual chunk lines can be large when deltas carry tool arguments.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &SSEDecoder{
		scanner: scanner,
		body:    body,
	}
}

// Next advances to the next data-bearing event. It returns false when the
// termination sentinel is seen, the body is exhausted, or a read error
// occurred (reported by Err).
func (d *SSEDecoder) Next() bool {
	if d.done || d.err != nil {
		return false
	}

	var eventType string
	for d.scanner.Scan() {
		line := d.scanner.Bytes()
		switch {
		case len(bytes.TrimSpace(line)) == 0:
			eventType = ""
		case bytes.HasPrefix(line, []byte(":")):
			// Comment line used by OpenRouter as a keep-alive.
		case bytes.HasPrefix(line, []byte("event:")):
			eventType = string(bytes.TrimSpace(line[len("event:"):]))
		case bytes.HasPrefix(line, []byte("data:")):
			data := bytes.TrimSpace(line[len("data:"):])
			if bytes.Equal(data, doneSentinel) {
				d.done = true
				d.sawDone = true
				return false
			}
			if len(data) == 0 {
				continue
			}
			// The scanner reuses its buffer on the next Scan.
			d.event = Event{Type: eventType, Data: append([]byte(nil), data...)}
			return true
		}
	}

	d.err = d.scanner.Err()
	d.done = true
	return false
}

// Event returns the event produced by the last successful Next call.
func (d *SSEDecoder) Event() Event {
	return d.event
}

// Err reports a read error that terminated the stream, if any.
func (d *SSEDecoder) Err() error {
	return d.err
}

// Terminated reports whether the stream ended with the [DONE] sentinel.
func (d *SSEDecoder) Terminated() bool {
	return d.sawDone
}

// Close releases the underlying response body.
func (d *SSEDecoder) Close() error {
	return d.body.Close()
}
