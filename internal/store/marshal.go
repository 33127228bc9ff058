package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/solve"
	"github.com/roach88/attest/internal/suite"
)

// eventPayload is the stored form of a solver event. Exactly one field
// group is populated, per kind, mirroring solve.Event.
type eventPayload struct {
	Model       []string           `json:"model,omitempty"`
	LowerBound  []int64            `json:"lower_bound,omitempty"`
	Core        []int32            `json:"core,omitempty"`
	Step        map[string]float64 `json:"step,omitempty"`
	Accumulated map[string]float64 `json:"accumulated,omitempty"`
	Result      *resultPayload     `json:"result,omitempty"`
}

type resultPayload struct {
	Satisfiable bool `json:"satisfiable"`
	Exhausted   bool `json:"exhausted"`
	Interrupted bool `json:"interrupted"`
}

// marshalEvent converts a solver event to its kind plus a JSON payload.
// Go's json.Marshal sorts map keys, so statistics serialize
// deterministically.
func marshalEvent(e solve.Event) (kind string, payload string, err error) {
	p := eventPayload{}
	switch e.Kind {
	case solve.EventModel:
		if e.Model == nil {
			return "", "", fmt.Errorf("marshal event: model event without model")
		}
		p.Model = e.Model.Atoms()
		if p.Model == nil {
			p.Model = []string{}
		}
	case solve.EventUnsat:
		p.LowerBound = e.LowerBound
	case solve.EventCore:
		p.Core = e.Core
	case solve.EventStatistics:
		p.Step = e.Step
		p.Accumulated = e.Accumulated
	case solve.EventFinish:
		p.Result = &resultPayload{
			Satisfiable: e.Result.Satisfiable,
			Exhausted:   e.Result.Exhausted,
			Interrupted: e.Result.Interrupted,
		}
	default:
		return "", "", fmt.Errorf("marshal event: unknown kind %q", e.Kind)
	}

	data, err := encodeJSON(p)
	if err != nil {
		return "", "", fmt.Errorf("marshal event: %w", err)
	}
	return string(e.Kind), data, nil
}

// unmarshalEvent rebuilds a solver event from its stored kind and payload.
func unmarshalEvent(kind, payload string) (solve.Event, error) {
	var p eventPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return solve.Event{}, fmt.Errorf("unmarshal event: %w", err)
	}

	e := solve.Event{Kind: solve.EventKind(kind)}
	switch e.Kind {
	case solve.EventModel:
		e.Model = model.New(p.Model...)
	case solve.EventUnsat:
		e.LowerBound = p.LowerBound
	case solve.EventCore:
		e.Core = p.Core
	case solve.EventStatistics:
		e.Step = p.Step
		e.Accumulated = p.Accumulated
	case solve.EventFinish:
		if p.Result == nil {
			return solve.Event{}, fmt.Errorf("unmarshal event: finish event without result")
		}
		e.Result = model.Result{
			Satisfiable: p.Result.Satisfiable,
			Exhausted:   p.Result.Exhausted,
			Interrupted: p.Result.Interrupted,
		}
	default:
		return solve.Event{}, fmt.Errorf("unmarshal event: unknown kind %q", kind)
	}
	return e, nil
}

// marshalCheck serializes a check spec to JSON TEXT for storage. Struct
// field order is fixed, so the output is deterministic.
func marshalCheck(n *suite.NodeSpec) (string, error) {
	data, err := encodeJSON(n)
	if err != nil {
		return "", fmt.Errorf("marshal check: %w", err)
	}
	return data, nil
}

// unmarshalCheck parses a stored check spec.
func unmarshalCheck(data string) (*suite.NodeSpec, error) {
	var n suite.NodeSpec
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		return nil, fmt.Errorf("unmarshal check: %w", err)
	}
	return &n, nil
}

// encodeJSON marshals without HTML escaping and without the trailing
// newline json.Encoder appends.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
