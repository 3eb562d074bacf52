package xit

import "time"

// Version selects which element ordering Write emits.
type Version int

const (
	// VersionV2 is the current format (includes tableType, polyShape,
	// tableProperties).
	VersionV2 Version = iota
	// VersionV1 is the legacy format Read still accepts.
	VersionV1
)

type writeConfig struct {
	version      Version
	creationDate string
}

// Option customizes Write's output.
type Option func(*writeConfig)

// WithVersion selects the element ordering to emit. The default is
// VersionV2.
func WithVersion(v Version) Option {
	return func(c *writeConfig) { c.version = v }
}

// WithCreationDate overrides the <creationDate> value Write emits
// (normally today's date); useful for reproducible output in tests.
func WithCreationDate(date string) Option {
	return func(c *writeConfig) { c.creationDate = date }
}

func newWriteConfig(opts ...Option) *writeConfig {
	c := &writeConfig{version: VersionV2, creationDate: time.Now().Format("2006-01-02")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
