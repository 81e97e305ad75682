package dgt

import (
	"fmt"

	"github.com/dgtkit/go-dgt/protocol"
)

// UnexpectedResponseError indicates the board answered a request with a
// message type that is neither the solicited one nor a spontaneous update.
type UnexpectedResponseError struct {
	Want protocol.MessageType
	Got  protocol.MessageType
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response: want %s, got %s", e.Want, e.Got)
}
