package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
	"github.com/ngaut/log"
	"github.com/pingcap/errors"
)

type Config struct {
	StoreAddr  string `toml:"store-addr"`  // Address the coordinator gRPC service listens on.
	StatusAddr string `toml:"status-addr"` // Address of the status and metrics HTTP server.
	LogLevel   string `toml:"log-level"`
	LogFile    string `toml:"log-file"` // Empty means stderr.

	// "badger" keeps the data under DBPath, "mem" keeps it in memory and loses it on exit.
	Storage string `toml:"storage"`
	DBPath  string `toml:"db-path"` // Directory to store the data in. Should exist and be writable.

	// A transaction whose last heartbeat is older than this is considered abandoned and is aborted by the next
	// status query.
	TxnExpiry Duration `toml:"txn-expiry"`
	// Interval at which an active transaction refreshes its heartbeat. Must be well below TxnExpiry.
	HeartbeatInterval Duration `toml:"heartbeat-interval"`

	// Number of raw rows fetched per scan round trip when the caller does not ask for a count.
	ScanBatchSize int `toml:"scan-batch-size"`
	// Number of terminal transaction statuses kept per cache generation.
	StatusCacheSize int `toml:"status-cache-size"`
	// Stamp rows of finished writers found by readers.
	RollForward bool `toml:"roll-forward"`
	// How many times a write re-checks a row that changed between conflict check and write.
	WriteRetryLimit int `toml:"write-retry-limit"`
	// Number of background workers stamping rows after commit or rollback.
	FinalizerWorkers int `toml:"finalizer-workers"`

	Engine Engine `toml:"engine"`
}

type Engine struct {
	ValueLogFileSize string `toml:"vlog-file-size"` // Human readable, e.g. "256MB".
	MaxTableSize     string `toml:"max-table-size"` // Each table is at most this size.
	NumMemTables     int    `toml:"num-mem-tables"` // Maximum number of tables to keep in memory, before stalling.
	NumL0Tables      int    `toml:"num-L0-tables"`  // Maximum number of Level 0 tables before we start compacting.
	NumL0TablesStall int    `toml:"num-L0-tables-stall"`
	NumCompactors    int    `toml:"num-compactors"`

	// Sync all writes to disk. Setting this to false loses the latest writes on a crash.
	SyncWrites bool `toml:"sync-writes"`
}

// Duration is a time.Duration that decodes from strings like "10s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return errors.Trace(err)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (e *Engine) ValueLogFileBytes() (int64, error) {
	return parseSize("vlog-file-size", e.ValueLogFileSize)
}

func (e *Engine) MaxTableBytes() (int64, error) {
	return parseSize("max-table-size", e.MaxTableSize)
}

func parseSize(name, s string) (int64, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, errors.Annotatef(err, "invalid %s %q", name, s)
	}
	if n <= 0 {
		return 0, errors.Errorf("%s must be positive, got %q", name, s)
	}
	return n, nil
}

const (
	StorageBadger = "badger"
	StorageMem    = "mem"
)

func (c *Config) Validate() error {
	if c.Storage != StorageBadger && c.Storage != StorageMem {
		return fmt.Errorf("unknown storage %q, expected %q or %q", c.Storage, StorageBadger, StorageMem)
	}
	if c.TxnExpiry.Duration <= 0 {
		return fmt.Errorf("txn-expiry must be greater than 0")
	}
	if c.HeartbeatInterval.Duration <= 0 {
		return fmt.Errorf("heartbeat-interval must be greater than 0")
	}
	if c.HeartbeatInterval.Duration >= c.TxnExpiry.Duration {
		return fmt.Errorf("heartbeat-interval %v must be less than txn-expiry %v", c.HeartbeatInterval, c.TxnExpiry)
	}
	if c.HeartbeatInterval.Duration*2 > c.TxnExpiry.Duration {
		log.Warnf("heartbeat-interval %v is more than half of txn-expiry %v, "+
			"live transactions may be reclaimed after a single missed heartbeat", c.HeartbeatInterval, c.TxnExpiry)
	}
	if c.ScanBatchSize <= 0 {
		return fmt.Errorf("scan-batch-size must be greater than 0")
	}
	if c.StatusCacheSize <= 0 {
		return fmt.Errorf("status-cache-size must be greater than 0")
	}
	if c.WriteRetryLimit < 0 {
		return fmt.Errorf("write-retry-limit must not be negative")
	}
	if c.FinalizerWorkers < 0 {
		return fmt.Errorf("finalizer-workers must not be negative")
	}
	if _, err := c.Engine.ValueLogFileBytes(); err != nil {
		return err
	}
	if _, err := c.Engine.MaxTableBytes(); err != nil {
		return err
	}
	return nil
}

// LoadFile reads a TOML config file on top of the defaults. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	conf := NewDefaultConfig()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, errors.Annotatef(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("config %s contains unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return conf, nil
}

func getLogLevel() (logLevel string) {
	logLevel = "info"
	if l := os.Getenv("LOG_LEVEL"); len(l) != 0 {
		logLevel = l
	}
	return
}

func NewDefaultConfig() *Config {
	return &Config{
		StoreAddr:         "127.0.0.1:20260",
		StatusAddr:        "127.0.0.1:20280",
		LogLevel:          getLogLevel(),
		Storage:           StorageBadger,
		DBPath:            "/tmp/domino",
		TxnExpiry:         NewDuration(60 * time.Second),
		HeartbeatInterval: NewDuration(10 * time.Second),
		ScanBatchSize:     100,
		StatusCacheSize:   1024,
		RollForward:       true,
		WriteRetryLimit:   3,
		FinalizerWorkers:  2,
		Engine: Engine{
			ValueLogFileSize: "256MB",
			MaxTableSize:     "64MB",
			NumMemTables:     3,
			NumL0Tables:      4,
			NumL0TablesStall: 8,
			NumCompactors:    1,
			SyncWrites:       true,
		},
	}
}

func NewTestConfig() *Config {
	conf := NewDefaultConfig()
	conf.TxnExpiry = NewDuration(500 * time.Millisecond)
	conf.HeartbeatInterval = NewDuration(50 * time.Millisecond)
	conf.ScanBatchSize = 4
	conf.StatusCacheSize = 16
	conf.FinalizerWorkers = 1
	conf.Engine.ValueLogFileSize = "16MB"
	conf.Engine.MaxTableSize = "8MB"
	conf.Engine.SyncWrites = false
	return conf
}
