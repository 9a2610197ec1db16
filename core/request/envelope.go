package request

import (
	"encoding/json"
	"fmt"
)

// Envelope is the {success, data, msg} shape every endpoint answers with.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Msg     string          `json:"msg,omitempty"`
}

// wireEnvelope tells an explicit success:false apart from a missing flag.
type wireEnvelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Msg     string          `json:"msg"`
}

// decodeEnvelope parses body. explicitFailure is true only for success:false,
// which is the one case where the server's msg is meant for the user.
func decodeEnvelope(body []byte) (env Envelope, explicitFailure bool, err error) {
	var w wireEnvelope
	if err := json.Unmarshal(body, &w); err != nil {
		return Envelope{}, false, fmt.Errorf("decode envelope: %w", err)
	}

	env = Envelope{Data: w.Data, Msg: w.Msg}
	if w.Success != nil {
		env.Success = *w.Success
		explicitFailure = !*w.Success
	}
	return env, explicitFailure, nil
}

// decodeData unmarshals an envelope payload into T. Absent or null data yields the zero value.
func decodeData[T any](data json.RawMessage) (T, error) {
	var v T
	if len(data) == 0 || string(data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("request: decode data: %w", err)
	}
	return v, nil
}
