package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	defer func() { _ = SetLevel("info") }()

	Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, SetLevel("debug"))
	Debugf("bucket %d", 3)
	assert.Contains(t, buf.String(), "bucket 3")

	buf.Reset()
	require.NoError(t, SetLevel("warn"))
	Infof("hidden %s", "too")
	Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetLevelUnknown(t *testing.T) {
	err := SetLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
