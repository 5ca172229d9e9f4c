package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUndecodablePayload is returned when a payload cannot be shaped into the requested type
var ErrUndecodablePayload = errors.New("event payload cannot be decoded")

// DecodePayload returns input as a T.
// Events built by the ledger already carry a T or *T. Payloads read back from
// the dead-letter file or the journal arrive as generic maps and take the
// JSON path.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case nil:
		return result, fmt.Errorf("%w: payload is empty", ErrUndecodablePayload)
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%w: payload is a nil %T", ErrUndecodablePayload, v)
		}
		return *v, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrUndecodablePayload, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %T into %T: %v", ErrUndecodablePayload, input, result, err)
	}
	return result, nil
}
