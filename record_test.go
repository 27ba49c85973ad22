package attrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_OpenLayoutAcceptsAnyName(t *testing.T) {
	r := NewRecord(WithToken("rec-1"))

	r.Set("x", 50)
	r.Set("x", 200)
	r.Set("_prot", 50)
	r.Set("_prot", 200)
	r.Set("s", "Hello")
	r.Set("s", "HelloWorld")

	h := r.History()
	assert.Equal(t, []Change{
		{Seq: 1, Old: Unset, New: 50},
		{Seq: 2, Old: 50, New: 200},
	}, h.Get("x"))
	assert.Equal(t, []Change{
		{Seq: 3, Old: Unset, New: 50},
		{Seq: 4, Old: 50, New: 200},
	}, h.Get("_prot"))
	assert.Equal(t, []Change{
		{Seq: 5, Old: Unset, New: "Hello"},
		{Seq: 6, Old: "Hello", New: "HelloWorld"},
	}, h.Get("s"))

	v, ok := r.Get("x")
	require.True(t, ok)
	assert.Equal(t, 200, v)

	_, ok = r.Get("never")
	assert.False(t, ok)

	assert.Equal(t, []string{"_prot", "s", "x"}, r.Attrs())
}

func TestRecord_NilIsNotUnset(t *testing.T) {
	r := NewRecord(WithToken("rec-2"))

	r.Set("a", nil)
	r.Set("a", 5)

	got := r.History().Get("a")
	require.Len(t, got, 2)
	assert.True(t, IsUnset(got[0].Old))
	assert.Nil(t, got[0].New)
	assert.Nil(t, got[1].Old)
	assert.Equal(t, 5, got[1].New)

	// The attribute exists and currently holds 5.
	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestRecord_ClearThenWriteUsesCurrentValue(t *testing.T) {
	r := NewRecord(WithToken("rec-3"))

	r.Set("a", 1)
	r.Set("a", 2)
	r.History().ClearAttr("a")
	r.Set("a", 3)

	// Clearing drops history, not the value: the next write's old side is
	// the value the attribute actually holds.
	assert.Equal(t, []Change{{Seq: 3, Old: 2, New: 3}}, r.History().Get("a"))
}

func TestRecord_InstancesAreIndependent(t *testing.T) {
	r1 := NewRecord(WithToken("rec-a"))
	r2 := NewRecord(WithToken("rec-b"))

	r1.Set("x", 1)
	r1.Set("x", 50)
	r1.Set("y", 1)
	r1.Set("y", 200)
	r2.Set("x", 2)
	r2.Set("x", 100)

	assert.Equal(t, map[string][]Change{
		"x": {{Seq: 1, Old: Unset, New: 1}, {Seq: 2, Old: 1, New: 50}},
		"y": {{Seq: 3, Old: Unset, New: 1}, {Seq: 4, Old: 1, New: 200}},
	}, r1.History().GetAll())
	assert.Equal(t, map[string][]Change{
		"x": {{Seq: 1, Old: Unset, New: 2}, {Seq: 2, Old: 2, New: 100}},
	}, r2.History().GetAll())

	// Clearing one instance leaves the other alone.
	r1.History().Clear()
	assert.Empty(t, r1.History().GetAll())
	assert.Len(t, r2.History().GetAll(), 1)
}
