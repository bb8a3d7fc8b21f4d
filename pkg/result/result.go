// Package result carries the outcome of one view: a payload, a descriptive
// "nothing to show" message, or a failure.
package result

import (
	"bytes"
	"encoding/json"
	"errors"
)

type Kind int

const (
	KindOk Kind = iota
	KindEmpty
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	}
	return "unknown"
}

// Result is the tagged union returned by every view.
//
// JSON encoding keeps the shapes consumers already read: Ok encodes the bare
// payload, Empty encodes its message as a string and Error encodes
// {"status":"error","message":...}, or the bare message when Plain is set.
type Result[T any] struct {
	Kind    Kind
	Value   T
	Message string
	Err     error
	Plain   bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Kind: KindOk, Value: v}
}

func Empty[T any](message string) Result[T] {
	return Result[T]{Kind: KindEmpty, Message: message}
}

// Fail wraps err; message is what gets shown to the user. An empty message
// falls back to err.Error().
func Fail[T any](err error, message string) Result[T] {
	if err == nil {
		err = errors.New(message)
	}
	if message == "" {
		message = err.Error()
	}
	return Result[T]{Kind: KindError, Message: message, Err: err}
}

// FailPlain is Fail for failures reported to the user as the message alone.
func FailPlain[T any](err error, message string) Result[T] {
	r := Fail[T](err, message)
	r.Plain = true
	return r
}

func (r Result[T]) IsOk() bool    { return r.Kind == KindOk }
func (r Result[T]) IsEmpty() bool { return r.Kind == KindEmpty }
func (r Result[T]) IsError() bool { return r.Kind == KindError }

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.Kind == KindOk:
		return marshal(r.Value)
	case r.Kind == KindEmpty, r.Plain:
		return marshal(r.Message)
	default:
		return marshal(errorBody{Status: "error", Message: r.Message})
	}
}

// marshal leaves "&", "<" and ">" unescaped.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
