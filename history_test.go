package attrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_ReadsAreIdempotent(t *testing.T) {
	r := NewRecord(WithToken("h-1"))
	r.Set("x", 1)
	r.Set("y", 2)

	h := r.History()
	assert.Equal(t, h.Get("x"), h.Get("x"))
	assert.Equal(t, h.GetAll(), h.GetAll())
	assert.Equal(t, h.Timeline(), h.Timeline())
}

func TestHistory_ReturnsCopies(t *testing.T) {
	r := NewRecord(WithToken("h-2"))
	r.Set("x", 1)
	r.Set("x", 2)

	got := r.History().Get("x")
	got[0] = Change{Seq: 99, Old: "garbage", New: "garbage"}

	all := r.History().GetAll()
	delete(all, "x")

	assert.Equal(t, []Change{
		{Seq: 1, Old: Unset, New: 1},
		{Seq: 2, Old: 1, New: 2},
	}, r.History().Get("x"))
	assert.Len(t, r.History().GetAll(), 1)
}

func TestHistory_ClearAttrKeepsKey(t *testing.T) {
	r := NewRecord(WithToken("h-3"))
	r.Set("x", 1)
	r.Set("x", 50)
	r.Set("y", 200)

	h := r.History()
	h.ClearAttr("x")

	// The cleared attribute stays in GetAll with an empty sequence; other
	// attributes are untouched.
	assert.Equal(t, map[string][]Change{
		"x": {},
		"y": {{Seq: 3, Old: Unset, New: 200}},
	}, h.GetAll())
	assert.Empty(t, h.Get("x"))
	assert.Equal(t, 0, h.Len("x"))
	assert.Equal(t, 1, h.Len("y"))
}

func TestHistory_ClearDropsAllKeys(t *testing.T) {
	r := NewRecord(WithToken("h-4"))
	r.Set("x", 1)
	r.Set("y", 2)

	h := r.History()
	h.Clear()

	assert.Empty(t, h.GetAll())
	assert.Empty(t, h.Get("x"))

	// The lifetime write count survives clearing.
	assert.Equal(t, int64(2), h.Writes())

	// Values survive clearing too.
	v, ok := r.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestHistory_TimelineInterleavesAttributes(t *testing.T) {
	r := NewRecord(WithToken("h-5"))
	r.Set("x", 1)
	r.Set("y", 2)
	r.Set("x", 3)
	r.Set("z", 4)

	tl := r.History().Timeline()
	require.Len(t, tl, 4)

	var attrs []string
	var last int64
	for _, ev := range tl {
		attrs = append(attrs, ev.Attr)
		assert.Greater(t, ev.Seq, last)
		assert.Equal(t, "h-5", ev.Token)
		last = ev.Seq
	}
	assert.Equal(t, []string{"x", "y", "x", "z"}, attrs)
	assert.Equal(t, Event{Token: "h-5", Attr: "x", Seq: 3, Old: 1, New: 3}, tl[2])
}

func TestHistory_TimelineOmitsClearedEntries(t *testing.T) {
	r := NewRecord(WithToken("h-6"))
	r.Set("x", 1)
	r.Set("y", 2)
	r.History().ClearAttr("x")

	tl := r.History().Timeline()
	require.Len(t, tl, 1)
	assert.Equal(t, "y", tl[0].Attr)
}

func TestUnset_Identity(t *testing.T) {
	assert.True(t, IsUnset(Unset))
	assert.False(t, IsUnset(nil))
	assert.False(t, IsUnset("<unset>"))
	assert.Equal(t, "<unset>", Unset.String())
}
