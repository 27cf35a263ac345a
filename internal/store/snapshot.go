package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"LocalPaint/internal/state"
)

// ErrNoCanvas is returned when there is no usable saved snapshot, whether
// the key is missing or its value does not parse.
var ErrNoCanvas = errors.New("no saved canvas")

// wireSegment mirrors state.Segment with optional coordinates so entries
// written without a position can be told apart and dropped.
type wireSegment struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Size   int      `json:"size"`
	Color  string   `json:"color"`
	Eraser bool     `json:"eraser"`
	Start  bool     `json:"start,omitempty"`
}

// Encode serializes a log as a JSON array. An empty log encodes as "[]".
func Encode(segs []state.Segment) ([]byte, error) {
	if segs == nil {
		segs = []state.Segment{}
	}
	data, err := json.Marshal(segs)
	if err != nil {
		return nil, fmt.Errorf("encode segments: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of segments. Entries missing a coordinate
// are dropped, but they still break the stroke: the next positioned entry
// becomes a start marker so replay does not join across the gap.
func Decode(data []byte) ([]state.Segment, error) {
	var wire []wireSegment
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode segments: %w", err)
	}
	segs := make([]state.Segment, 0, len(wire))
	gap := false
	for _, w := range wire {
		if w.X == nil || w.Y == nil {
			gap = true
			continue
		}
		segs = append(segs, state.Segment{
			X: *w.X, Y: *w.Y,
			Size: w.Size, Color: w.Color,
			Eraser: w.Eraser, Start: w.Start || gap,
		})
		gap = false
	}
	return segs, nil
}

// Snapshots saves and loads one segment log under a fixed key.
type Snapshots struct {
	store Store
	key   string
}

func NewSnapshots(s Store, key string) *Snapshots {
	if key == "" {
		key = DefaultKey
	}
	return &Snapshots{store: s, key: key}
}

func (s *Snapshots) Key() string { return s.key }

func (s *Snapshots) Save(segs []state.Segment) error {
	data, err := Encode(segs)
	if err != nil {
		return err
	}
	s.store.Set(s.key, string(data))
	log.Printf("[STORE] Saved %d segments under %q", len(segs), s.key)
	return nil
}

// Load returns the saved log, or ErrNoCanvas when nothing usable is
// stored.
func (s *Snapshots) Load() ([]state.Segment, error) {
	raw, ok := s.store.Get(s.key)
	if !ok {
		return nil, ErrNoCanvas
	}
	segs, err := Decode([]byte(raw))
	if err != nil {
		log.Printf("[STORE] Ignoring unreadable snapshot %q: %v", s.key, err)
		return nil, fmt.Errorf("%w: %v", ErrNoCanvas, err)
	}
	log.Printf("[STORE] Loaded %d segments from %q", len(segs), s.key)
	return segs, nil
}

func (s *Snapshots) Exists() bool {
	_, ok := s.store.Get(s.key)
	return ok
}

// Clear removes the snapshot, or returns ErrNoCanvas if there was none.
func (s *Snapshots) Clear() error {
	if !s.Exists() {
		return ErrNoCanvas
	}
	s.store.Remove(s.key)
	log.Printf("[STORE] Removed snapshot %q", s.key)
	return nil
}
