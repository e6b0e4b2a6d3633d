package response

import (
	"encoding/json"
	"time"
)

// Resp is the JSON envelope every endpoint returns. ErrorCode 0 means
// success; anything else pairs with a human-readable Message.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date marshals as DateFormat in the server's local zone.
type Date time.Time

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return marshalLocal(time.Time(d), DateFormat)
}

// DateTime marshals as DateTimeFormat in the server's local zone.
type DateTime time.Time

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return marshalLocal(time.Time(d), DateTimeFormat)
}

func marshalLocal(t time.Time, layout string) ([]byte, error) {
	return json.Marshal(t.Local().Format(layout))
}
