package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.Nil(t, NewDefaultConfig().Validate())
	require.Nil(t, NewTestConfig().Validate())

	for _, mutate := range []func(c *Config){
		func(c *Config) { c.Storage = "rocksdb" },
		func(c *Config) { c.TxnExpiry = NewDuration(0) },
		func(c *Config) { c.HeartbeatInterval = c.TxnExpiry },
		func(c *Config) { c.ScanBatchSize = 0 },
		func(c *Config) { c.StatusCacheSize = -1 },
		func(c *Config) { c.WriteRetryLimit = -1 },
		func(c *Config) { c.FinalizerWorkers = -1 },
		func(c *Config) { c.Engine.ValueLogFileSize = "lots" },
		func(c *Config) { c.Engine.MaxTableSize = "0MB" },
	} {
		conf := NewDefaultConfig()
		mutate(conf)
		assert.NotNil(t, conf.Validate())
	}
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "domino.toml")
	content := `
store-addr = "0.0.0.0:30000"
storage = "mem"
txn-expiry = "2m"
heartbeat-interval = "15s"
roll-forward = false

[engine]
vlog-file-size = "1GB"
`
	require.Nil(t, ioutil.WriteFile(path, []byte(content), 0644))
	conf, err := LoadFile(path)
	require.Nil(t, err)
	require.Nil(t, conf.Validate())
	assert.Equal(t, "0.0.0.0:30000", conf.StoreAddr)
	assert.Equal(t, StorageMem, conf.Storage)
	assert.Equal(t, 2*time.Minute, conf.TxnExpiry.Duration)
	assert.Equal(t, 15*time.Second, conf.HeartbeatInterval.Duration)
	assert.False(t, conf.RollForward)
	vlog, err := conf.Engine.ValueLogFileBytes()
	require.Nil(t, err)
	assert.Equal(t, int64(1<<30), vlog)
	// Unset keys keep their defaults.
	assert.Equal(t, 100, conf.ScanBatchSize)

	require.Nil(t, ioutil.WriteFile(path, []byte("no-such-key = 1\n"), 0644))
	_, err = LoadFile(path)
	assert.NotNil(t, err)

	require.Nil(t, ioutil.WriteFile(path, []byte(`txn-expiry = "soon"`), 0644))
	_, err = LoadFile(path)
	assert.NotNil(t, err)
}
