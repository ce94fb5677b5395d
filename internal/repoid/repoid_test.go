package repoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_ProgressiveQualification verifies each abbreviation level.
//
// Scenario: user "foo" references github.com/foo/bar with increasing detail
// Expected: every form expands to the same URL for the chosen scheme
func TestNormalize_ProgressiveQualification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ref    string
		scheme Scheme
		want   string
	}{
		{"bare name https", "bar", HTTPS, "https://github.com/foo/bar"},
		{"owner/name https", "foo/bar", HTTPS, "https://github.com/foo/bar"},
		{"host/owner/name https", "github.com/foo/bar", HTTPS, "https://github.com/foo/bar"},
		{"full url https", "https://github.com/foo/bar", HTTPS, "https://github.com/foo/bar"},
		{"bare name ssh", "bar", SSH, "ssh://git@github.com/foo/bar"},
		{"owner/name ssh", "foo/bar", SSH, "ssh://git@github.com/foo/bar"},
		{"host/owner/name ssh", "github.com/foo/bar", SSH, "ssh://git@github.com/foo/bar"},
		{"explicit login ssh", "user@github.com/foo/bar", SSH, "ssh://user@github.com/foo/bar"},
		{"other owner", "baz/bar", HTTPS, "https://github.com/baz/bar"},
		{"surrounding whitespace", "  foo/bar\n", HTTPS, "https://github.com/foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalize(tt.ref, "foo", tt.scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// TestNormalize_PassThrough verifies complete URLs are never requalified.
//
// Scenario: the reference already has a scheme and at least three separators
// Expected: the parsed URL equals the input for both schemes
func TestNormalize_PassThrough(t *testing.T) {
	t.Parallel()

	refs := []string{
		"https://github.com/foo/bar",
		"ssh://git@github.com/foo/bar",
		"https://gitlab.example.com/group/sub/project.git",
		"ssh://git@example.com:2222/foo/bar",
	}
	for _, ref := range refs {
		for _, scheme := range []Scheme{HTTPS, SSH} {
			got, err := Normalize(ref, "someone", scheme)
			require.NoError(t, err, "ref %q scheme %s", ref, scheme)
			assert.Equal(t, ref, got.String(), "ref %q scheme %s", ref, scheme)
		}
	}
}

// TestNormalize_AtSignOnlyInspectedForSSH verifies the login handling.
//
// Scenario: a host-qualified reference carries a login under https
// Expected: https:// is prepended without adding or removing any login
func TestNormalize_AtSignOnlyInspectedForSSH(t *testing.T) {
	t.Parallel()

	got, err := Normalize("user@github.com/foo/bar", "foo", HTTPS)
	require.NoError(t, err)
	assert.Equal(t, "https://user@github.com/foo/bar", got.String())
	assert.Equal(t, "user", got.User.Username())
}

func TestNormalize_SCPStyle(t *testing.T) {
	t.Parallel()

	for _, scheme := range []Scheme{HTTPS, SSH} {
		got, err := Normalize("git@github.com:foo/bar.git", "foo", scheme)
		require.NoError(t, err)
		assert.Equal(t, "ssh://git@github.com/foo/bar.git", got.String())
	}
}

func TestNormalizer_CustomHost(t *testing.T) {
	t.Parallel()

	n := Normalizer{Host: "gitlab.com"}
	got, err := n.Normalize("bar", "foo", SSH)
	require.NoError(t, err)
	assert.Equal(t, "ssh://git@gitlab.com/foo/bar", got.String())

	got, err = n.Normalize("github.com/foo/bar", "foo", HTTPS)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/foo/bar", got.String())
}

// TestNormalize_Invalid verifies malformed terminal references fail.
//
// Scenario: references that cannot become an absolute URL
// Expected: ErrInvalidReference
func TestNormalize_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too many segments without scheme", "github.com/foo/bar/baz"},
		{"bad escape", "https://github.com/%zz/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Normalize(tt.ref, "foo", HTTPS)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Normalize("foo/bar", "foo", SSH)
	require.NoError(t, err)
	for range 3 {
		again, err := Normalize("foo/bar", "foo", SSH)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSchemeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SSH, SchemeFor(true))
	assert.Equal(t, HTTPS, SchemeFor(false))
	assert.Equal(t, "ssh", SSH.String())
	assert.Equal(t, "https", HTTPS.String())
}
