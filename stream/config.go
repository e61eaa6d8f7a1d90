package stream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("stream: invalid config")

// Role is the endpoint role, which decides the masking rule (RFC 6455,
// section 5.1).
type Role string

const (
	// RoleNone applies no masking rule.
	RoleNone Role = ""

	// RoleServer receives masked frames and sends unmasked ones.
	RoleServer Role = "server"

	// RoleClient receives unmasked frames and sends masked ones.
	RoleClient Role = "client"
)

// UnmarshalYAML accepts the role name in any case.
func (r *Role) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: role must be a string", ErrInvalidConfig)
	}
	*r = Role(strings.ToLower(strings.TrimSpace(node.Value)))
	return nil
}

// Config is the receive policy of a Decoder or Sequencer.
type Config struct {
	// Role selects the masking rule for inbound frames.
	Role Role `yaml:"role"`

	// MaxFrameSize limits the payload of a single frame. 0 means unlimited.
	MaxFrameSize int64 `yaml:"max_frame_size"`

	// MaxMessageSize limits the sum of payloads of a fragmented message.
	// 0 means unlimited.
	MaxMessageSize int64 `yaml:"max_message_size"`

	// ValidateUTF8 enables validation of text messages.
	ValidateUTF8 bool `yaml:"validate_utf8"`
}

// DefaultConfig returns a Config with no role, no size limits and UTF-8
// validation enabled.
func DefaultConfig() Config {
	return Config{ValidateUTF8: true}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	switch c.Role {
	case RoleNone, RoleServer, RoleClient:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidConfig, string(c.Role))
	}
	if c.MaxFrameSize < 0 {
		return fmt.Errorf("%w: max_frame_size must not be negative", ErrInvalidConfig)
	}
	if c.MaxMessageSize < 0 {
		return fmt.Errorf("%w: max_message_size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig parses a YAML document on top of DefaultConfig. Unknown
// fields are rejected. An empty document yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}
