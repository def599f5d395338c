// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/jparse"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ValueOptions are the comparison options for jparse.Value trees. Empty and
// nil slices compare equal, since the parser does not distinguish them.
var ValueOptions = cmp.Options{
	cmp.AllowUnexported(jparse.Value{}),
	cmpopts.EquateEmpty(),
}

// Diff reports the differences between want and got, or "" if they are
// structurally equal.
func Diff(want, got *jparse.Value) string { return cmp.Diff(want, got, ValueOptions) }

// MustParse parses input with opts, and fails t if parsing does not succeed.
func MustParse(t testing.TB, opts jparse.Options, input string) *jparse.Value {
	t.Helper()
	v, err := opts.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}
