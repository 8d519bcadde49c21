package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		delim string
		want  []string
		err   error
	}{
		{name: "single", path: "greeting", delim: ".", want: []string{"greeting"}},
		{name: "nested", path: "a.b.c", delim: ".", want: []string{"a", "b", "c"}},
		{name: "default delimiter", path: "a.b", delim: "", want: []string{"a", "b"}},
		{name: "custom delimiter", path: "a/b.c", delim: "/", want: []string{"a", "b.c"}},
		{name: "empty", path: "", delim: ".", err: ErrEmpty},
		{name: "leading delimiter", path: ".a", delim: ".", err: ErrEmptySegment},
		{name: "trailing delimiter", path: "a.", delim: ".", err: ErrEmptySegment},
		{name: "double delimiter", path: "a..b", delim: ".", err: ErrEmptySegment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.path, tt.delim)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a.b.c", Join([]string{"a", "b", "c"}, ""))
	assert.Equal(t, "a/b", Join([]string{"a", "b"}, "/"))

	segments, err := Split("x.y.z", ".")
	require.NoError(t, err)
	assert.Equal(t, "x.y.z", Join(segments, "."))
}
