package monitoring

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	Logf("run %d", 3)
	assert.Equal(t, []string{"run 3"}, got)

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("muted %d", 1) })
	assert.Len(t, got, 1)
}

// TestLogf_DefaultSink writes progress messages through the standard logger.
func TestLogf_DefaultSink(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Logf = log.Printf
	Logf("run %d found no percolating cluster", 4)
	assert.Contains(t, buf.String(), "run 4 found no percolating cluster")
}
