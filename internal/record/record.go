// Package record implements the diagnostics decorator: an evaluable that
// forwards every event to an inner check unchanged while appending a
// summarized snapshot of the event and the resulting outcome to an
// append-only recording.
//
// Recordings are the persistence and replay currency of the harness. They
// summarize payloads rather than retaining them: a model is copied out as
// its atom list, statistics as formatted gauges, never as live handles.
package record

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/attest/internal/check"
	"github.com/roach88/attest/internal/model"
	"github.com/roach88/attest/internal/outcome"
	"github.com/roach88/attest/internal/testutil"
)

// Event names used in recording entries.
const (
	EventInit       = "init"
	EventModel      = "on_model"
	EventUnsat      = "on_unsat"
	EventCore       = "on_core"
	EventStatistics = "on_statistics"
	EventFinish     = "on_finish"
)

// Entry is one recorded event: which callback fired, a summarized payload,
// the OnModel continuation flag (model events only), and the outcome the
// tree reported immediately after the event.
type Entry struct {
	Seq     int64          `json:"seq"`
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload,omitempty"`
	Resume  *bool          `json:"resume,omitempty"`
	Value   bool           `json:"value"`
	Certain bool           `json:"certain"`
}

// Recording is an append-only log of entries.
type Recording struct {
	entries []Entry
}

// NewRecording builds a recording from existing entries (replay reads).
func NewRecording(entries []Entry) *Recording {
	return &Recording{entries: append([]Entry(nil), entries...)}
}

// Append adds one entry to the log.
func (r *Recording) Append(e Entry) {
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the log.
func (r *Recording) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of entries.
func (r *Recording) Len() int {
	return len(r.entries)
}

// Subsumes reports whether every entry of the expected recording matches the
// corresponding entry of this recording: same length, same event kind and
// outcome per entry, and the expected payload a subset of the actual one.
// Expected seq values of 0 match any seq.
func (r *Recording) Subsumes(expected *Recording) bool {
	if len(r.entries) != len(expected.entries) {
		return false
	}
	for i, want := range expected.entries {
		got := r.entries[i]
		if got.Event != want.Event || got.Value != want.Value || got.Certain != want.Certain {
			return false
		}
		if want.Seq != 0 && got.Seq != want.Seq {
			return false
		}
		if want.Resume != nil && (got.Resume == nil || *got.Resume != *want.Resume) {
			return false
		}
		for k, v := range want.Payload {
			gv, ok := got.Payload[k]
			if !ok || fmt.Sprintf("%v", gv) != fmt.Sprintf("%v", v) {
				return false
			}
		}
	}
	return true
}

// CanonicalJSON renders the recording as canonical JSON.
func (r *Recording) CanonicalJSON() ([]byte, error) {
	entries := make([]any, len(r.entries))
	for i, e := range r.entries {
		entry := map[string]any{
			"seq":     e.Seq,
			"event":   e.Event,
			"value":   e.Value,
			"certain": e.Certain,
		}
		if e.Payload != nil {
			entry["payload"] = e.Payload
		}
		if e.Resume != nil {
			entry["resume"] = *e.Resume
		}
		entries[i] = entry
	}
	return MarshalCanonical(map[string]any{"entries": entries})
}

// Hash returns the content-addressed identity of the recording.
func (r *Recording) Hash() (string, error) {
	canonical, err := r.CanonicalJSON()
	if err != nil {
		return "", fmt.Errorf("recording hash: %w", err)
	}
	return hashWithDomain(domainRecording, canonical), nil
}

// String renders the recording one numbered entry per line.
func (r *Recording) String() string {
	var b strings.Builder
	for i, e := range r.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d: %s value=%t certain=%t", i, e.Event, e.Value, e.Certain)
		if e.Resume != nil {
			fmt.Fprintf(&b, " resume=%t", *e.Resume)
		}
	}
	return b.String()
}

// Record wraps an evaluable, forwarding every call unchanged and logging
// one entry per event. It sits outside the correctness-critical path: the
// verdict is always the inner check's.
type Record struct {
	inner check.Evaluable
	rec   *Recording
	clock *testutil.SeqClock
}

// New wraps inner in a recording decorator. The recording opens with an
// init entry capturing the construction-time outcome.
func New(inner check.Evaluable) *Record {
	r := &Record{inner: inner, rec: &Recording{}, clock: testutil.NewSeqClock()}
	r.append(EventInit, nil, nil)
	return r
}

// Recording returns the live recording.
func (r *Record) Recording() *Recording {
	return r.rec
}

func (r *Record) append(event string, payload map[string]any, resume *bool) {
	out := r.inner.Outcome()
	r.rec.Append(Entry{
		Seq:     r.clock.Next(),
		Event:   event,
		Payload: payload,
		Resume:  resume,
		Value:   out.Value(),
		Certain: out.Certain(),
	})
}

func (r *Record) OnModel(m *model.Model) bool {
	resume := r.inner.OnModel(m)
	r.append(EventModel, map[string]any{"model": m.String()}, &resume)
	return resume
}

func (r *Record) OnUnsat(lowerBound []int64) {
	r.inner.OnUnsat(lowerBound)
	bounds := make([]any, len(lowerBound))
	for i, b := range lowerBound {
		bounds[i] = b
	}
	r.append(EventUnsat, map[string]any{"lower_bound": bounds}, nil)
}

func (r *Record) OnCore(core []int32) {
	r.inner.OnCore(core)
	ids := make([]any, len(core))
	for i, c := range core {
		ids[i] = c
	}
	r.append(EventCore, map[string]any{"core": ids}, nil)
}

func (r *Record) OnStatistics(step, accumulated model.Statistics) {
	r.inner.OnStatistics(step, accumulated)
	r.append(EventStatistics, map[string]any{
		"step":        summarizeStatistics(step),
		"accumulated": summarizeStatistics(accumulated),
	}, nil)
}

func (r *Record) OnFinish(result model.Result) {
	r.inner.OnFinish(result)
	r.append(EventFinish, map[string]any{"result": result.String()}, nil)
}

func (r *Record) Outcome() outcome.Outcome {
	return r.inner.Outcome()
}

// summarizeStatistics copies gauges out as sorted "key=value" strings.
// Canonical JSON forbids floats, so values are formatted at the boundary.
func summarizeStatistics(stats model.Statistics) []any {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k + "=" + strconv.FormatFloat(stats[k], 'g', -1, 64)
	}
	return out
}
