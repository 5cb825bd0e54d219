package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestFail_WritesErrorLine(t *testing.T) {
	var out bytes.Buffer
	err := fmt.Errorf("%w: API_KEY", config.ErrMissing)

	code := fail(&out, err)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: missing required configuration: API_KEY\n", out.String())
}
