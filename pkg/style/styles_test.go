package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitNever(t *testing.T) {
	Init("never")
	assert.Equal(t, "Error: oops", Error("Error: oops"))
	assert.Equal(t, "/tmp/Foo.app", Path("/tmp/Foo.app"))
	assert.Equal(t, "no changes", Muted("no changes"))
}

func TestInitAlwaysRoundTripsText(t *testing.T) {
	Init("always")
	defer Init("never")

	// Styled output still contains the original text.
	assert.Contains(t, Success("done"), "done")
}
