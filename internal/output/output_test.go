package output

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	t.Run("Path uses forward slashes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).Path(`C:\Users\foo\grm\github.com\foo\bar`)
		assert.Equal(t, "C:/Users/foo/grm/github.com/foo/bar\n", buf.String())
	})

	t.Run("Field", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).Field("origin:", "https://github.com/foo/bar")
		assert.Equal(t, "origin: https://github.com/foo/bar\n", buf.String())
	})

	t.Run("escape sequences stripped for non-terminals", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).Printf("\x1b[1mpath:\x1b[0m %s\n", "/tmp/x")
		assert.Equal(t, "path: /tmp/x\n", buf.String())
	})
}

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	FromContext(ctx).Path("hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestDisplayPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"/home/foo/grm/github.com/foo/bar", "/home/foo/grm/github.com/foo/bar"},
		{`github.com\foo\bar`, "github.com/foo/bar"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayPath(tt.in), "DisplayPath(%q)", tt.in)
	}
}
