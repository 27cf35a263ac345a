package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
)

var sample = []state.Segment{
	{X: 0, Y: 0, Size: 10, Color: "#A51DAB", Start: true},
	{X: 10, Y: 0, Size: 10, Color: "#A51DAB"},
	{X: 20.5, Y: 3.25, Size: 50, Color: "#FFFFFF", Eraser: true},
}

func TestSnapshotRoundTrip(t *testing.T) {
	snaps := NewSnapshots(NewMemory(), "")

	require.NoError(t, snaps.Save(sample))
	got, err := snaps.Load()

	require.NoError(t, err)
	assert.Equal(t, sample, got)
	assert.Equal(t, DefaultKey, snaps.Key())
}

func TestSnapshotWireFormat(t *testing.T) {
	data, err := Encode(sample[:2])
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"x":0,"y":0,"size":10,"color":"#A51DAB","eraser":false,"start":true},
		{"x":10,"y":0,"size":10,"color":"#A51DAB","eraser":false}
	]`, string(data))

	empty, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestSnapshotLoadMissing(t *testing.T) {
	snaps := NewSnapshots(NewMemory(), "k")

	_, err := snaps.Load()

	assert.ErrorIs(t, err, ErrNoCanvas)
	assert.False(t, snaps.Exists())
}

func TestSnapshotLoadMalformedIsAbsent(t *testing.T) {
	m := NewMemory()
	m.Set(DefaultKey, "{not json")
	snaps := NewSnapshots(m, DefaultKey)

	segs, err := snaps.Load()

	assert.ErrorIs(t, err, ErrNoCanvas)
	assert.Nil(t, segs)
}

func TestDecodeSkipsEntriesWithoutCoordinates(t *testing.T) {
	segs, err := Decode([]byte(`[{"x":1,"y":2,"size":3,"color":"#000000","eraser":false},{},{"x":5}]`))

	require.NoError(t, err)
	assert.Equal(t, []state.Segment{{X: 1, Y: 2, Size: 3, Color: "#000000"}}, segs)

	// a hover placeholder between two strokes separates them
	segs, err = Decode([]byte(`[{"x":0,"y":0,"size":2},{"x":10,"y":0,"size":2},{"size":2},{},{"x":50,"y":50,"size":2},{"x":60,"y":50,"size":2}]`))

	require.NoError(t, err)
	assert.Equal(t, []state.Segment{
		{X: 0, Y: 0, Size: 2},
		{X: 10, Y: 0, Size: 2},
		{X: 50, Y: 50, Size: 2, Start: true},
		{X: 60, Y: 50, Size: 2},
	}, segs)
}

func TestSnapshotClear(t *testing.T) {
	snaps := NewSnapshots(NewMemory(), "")
	assert.ErrorIs(t, snaps.Clear(), ErrNoCanvas)

	require.NoError(t, snaps.Save(sample))
	require.NoError(t, snaps.Clear())

	assert.False(t, snaps.Exists())
	_, err := snaps.Load()
	assert.ErrorIs(t, err, ErrNoCanvas)
}

func TestPrefsStore(t *testing.T) {
	a := test.NewTempApp(t)
	p := NewPrefs(a.Preferences())

	_, ok := p.Get("savedCanvas")
	assert.False(t, ok)

	p.Set("savedCanvas", "[]")
	v, ok := p.Get("savedCanvas")
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	p.Remove("savedCanvas")
	_, ok = p.Get("savedCanvas")
	assert.False(t, ok)
}
