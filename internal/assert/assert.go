package assert

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// CaptureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote to it.
func (a *Assert) CaptureStdout(fn func()) string {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	a.NoError(err, "Failed to create pipe")
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	a.NoError(err, "Failed to read captured output")
	return buf.String()
}
