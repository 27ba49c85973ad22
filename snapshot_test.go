package attrail

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CanonicalForm(t *testing.T) {
	r := NewRecord(WithToken("snap-1"))
	r.Set("b", 2)
	r.Set("a", 1)

	got, err := Snapshot(r.History())
	require.NoError(t, err)

	// Sorted keys, no whitespace, Unset as "<unset>".
	assert.Equal(t,
		`{"attributes":{"a":[{"new":1,"old":"<unset>","seq":2}],"b":[{"new":2,"old":"<unset>","seq":1}]},"token":"snap-1"}`,
		string(got))
}

func TestSnapshot_Deterministic(t *testing.T) {
	r := NewRecord(WithToken("snap-2"))
	for i := 0; i < 10; i++ {
		r.Set("x", i)
		r.Set("y", i*2)
	}

	first, err := Snapshot(r.History())
	require.NoError(t, err)
	second, err := Snapshot(r.History())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSnapshot_NoHTMLEscaping(t *testing.T) {
	r := NewRecord(WithToken("snap-3"))
	r.Set("s", "a<b>&c")

	got, err := Snapshot(r.History())
	require.NoError(t, err)
	assert.Contains(t, string(got), `"a<b>&c"`)
	assert.NotContains(t, string(got), `\u003c`)
}

func TestSnapshot_UnsupportedValue(t *testing.T) {
	r := NewRecord(WithToken("snap-4"))
	r.Set("x", struct{ A int }{1})

	_, err := Snapshot(r.History())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestSnapshot_Golden(t *testing.T) {
	r := NewRecord(WithToken("golden-record"))
	r.Set("count", 1)
	r.Set("count", 2)
	r.Set("label", "first")
	r.Set("label", "second")
	r.Set("flag", true)
	r.Set("note", nil)

	data, err := Snapshot(r.History())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "record_history", data)
}
