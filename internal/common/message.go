package common

import "errors"

// MessageError attaches a client-safe message to one of the sentinel errors.
// errors.Is still matches the sentinel.
type MessageError struct {
	Kind    error
	Message string
}

func (e *MessageError) Error() string { return e.Kind.Error() + ": " + e.Message }

func (e *MessageError) Unwrap() error { return e.Kind }

// WithMessage returns kind carrying msg.
func WithMessage(kind error, msg string) error {
	return &MessageError{Kind: kind, Message: msg}
}

// PublicMessage returns the message attached with WithMessage anywhere in
// err's chain, or "" if there is none.
func PublicMessage(err error) string {
	var me *MessageError
	if errors.As(err, &me) {
		return me.Message
	}
	return ""
}
