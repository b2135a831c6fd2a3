package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"chainmap/lib/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := parse(strings.NewReader("# comment\ndict-buckets 16\nLOG-LEVEL debug\n\nunknown 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, p.DictBuckets)
	assert.Equal(t, "debug", p.LogLevel)
}

// fillProperties 只处理 string 和 int，新增字段时需同步修改
func TestPropertyKinds(t *testing.T) {
	fields := reflect.TypeOf(DictProperties{})
	for i := 0; i < fields.NumField(); i++ {
		field := fields.Field(i)
		assert.Contains(t, []reflect.Kind{reflect.String, reflect.Int}, field.Type.Kind(), field.Name)
		_, ok := field.Tag.Lookup("cfg")
		assert.True(t, ok, field.Name)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	p, err := parse(strings.NewReader("log-level warn\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBucketCount, p.DictBuckets)
}

func TestParseBadInt(t *testing.T) {
	_, err := parse(strings.NewReader("dict-buckets eight\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dict-buckets")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, defaultProperties().Validate())

	err := (&DictProperties{DictBuckets: 0, LogLevel: "loud"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dict-buckets")
	assert.Contains(t, err.Error(), "loud")
}

func TestSetupConfigProperties(t *testing.T) {
	defer func() {
		Properties = defaultProperties()
		_ = logger.SetLevel("info")
	}()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.conf")
	require.NoError(t, os.WriteFile(good, []byte("dict-buckets 4\nlog-level warn\n"), 0o644))
	require.NoError(t, SetupConfigProperties(good))
	assert.Equal(t, 4, Properties.DictBuckets)

	bad := filepath.Join(dir, "bad.conf")
	require.NoError(t, os.WriteFile(bad, []byte("dict-buckets -1\n"), 0o644))
	require.Error(t, SetupConfigProperties(bad))
	assert.Equal(t, 4, Properties.DictBuckets)

	assert.Error(t, SetupConfigProperties(filepath.Join(dir, "missing.conf")))
}
