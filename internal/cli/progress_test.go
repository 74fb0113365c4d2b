package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	var out bytes.Buffer
	p := NewProgress(&out, 3, "Importing")

	p.Step()
	p.Step()
	p.Finish()

	assert.Contains(t, out.String(), "Importing")
	assert.Contains(t, out.String(), "3/3")
}
