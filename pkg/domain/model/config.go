package model

import (
	"fmt"
	"strconv"

	"github.com/go-ini/ini"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/types"
)

// Config is the repository configuration read from the metadata
// directory's config file. Only the core section is interpreted.
type Config struct {
	FormatVersion types.FormatVersion
	FileMode      bool
	Bare          bool
}

// DefaultConfig returns the configuration written to a fresh repository
func DefaultConfig() *Config {
	return &Config{
		FormatVersion: types.SupportedFormatVersion,
		FileMode:      false,
		Bare:          false,
	}
}

// LoadConfig reads and parses the configuration file at path
func LoadConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config file", goerr.V("path", path))
	}

	cfg := &Config{}
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			cfg.apply(section.Name(), key.Name(), key.Value())
		}
	}

	return cfg, nil
}

// apply maps one section/key/value entry onto the configuration. Unknown
// entries are ignored, later entries win. Boolean values are true only for
// the exact string "true". A version value that does not parse as an
// integer falls back to 0.
func (x *Config) apply(section, name, value string) {
	if section != "core" {
		return
	}

	switch name {
	case "repositoryformatversion":
		v, err := strconv.Atoi(value)
		if err != nil {
			v = 0
		}
		x.FormatVersion = types.FormatVersion(v)

	case "filemode":
		x.FileMode = value == "true"

	case "bare":
		x.Bare = value == "true"
	}
}

// Validate checks that the configuration is supported by this tool
func (x *Config) Validate() error {
	if x.FormatVersion != types.SupportedFormatVersion {
		return goerr.Wrap(types.ErrUnsupportedFormatVersion, "unsupported repositoryformatversion", goerr.V("version", x.FormatVersion))
	}

	return nil
}

// Render returns the configuration as INI text
func (x *Config) Render() string {
	return fmt.Sprintf("[core]\nrepositoryformatversion = %d\nfilemode = %t\nbare = %t\n",
		x.FormatVersion, x.FileMode, x.Bare)
}
