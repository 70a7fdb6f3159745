package service

import (
	"context"
	"encoding/json"
)

// stubInvoker records the last invocation and plays back a canned
// result or failure.
type stubInvoker struct {
	calls      int
	lastMethod string
	lastParams any
	result     any
	err        error
}

func (s *stubInvoker) Invoke(ctx context.Context, method string, params, result any) error {
	s.calls++
	s.lastMethod = method
	s.lastParams = params
	if s.err != nil {
		return s.err
	}
	if s.result == nil || result == nil {
		return nil
	}
	b, err := json.Marshal(s.result)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, result)
}

func intPtr(v int) *int { return &v }
