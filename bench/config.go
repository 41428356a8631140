// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config parameterizes a benchmark run.
type Config struct {
	// Keys is the number of random keys generated for the run.
	Keys int `toml:"keys"`
	// KeyLength is the number of letters in each key.
	KeyLength int `toml:"key_length"`
	// Iterations is how many times each case runs per pass.
	Iterations int `toml:"iterations"`
	// Seed seeds key generation so runs are reproducible.
	Seed int64 `toml:"seed"`
	// Rehearsal runs every case once, untimed, before the measured pass.
	Rehearsal bool `toml:"rehearsal"`
	// Cases restricts the run to the named cases. Empty means all.
	Cases []string `toml:"cases"`
}

// NewConfig returns the default configuration: 10000 keys of 9 letters,
// each case run 10 times after a rehearsal.
func NewConfig() *Config {
	return &Config{
		Keys:       10000,
		KeyLength:  9,
		Iterations: 10,
		Seed:       1,
		Rehearsal:  true,
	}
}

// Load decodes the TOML file at path over c.
func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	return c.Decode(file)
}

// Decode decodes TOML from r over c. Fields absent from the input keep
// their current values.
func (c *Config) Decode(r io.Reader) error {
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c); err != nil {
		return fmt.Errorf("decoding benchmark config: %w", err)
	}
	return nil
}

// Validate reports whether c describes a runnable benchmark.
func (c *Config) Validate() error {
	switch {
	case c.Keys <= 0:
		return fmt.Errorf("%w: keys must be positive, got %d", ErrInvalidConfig, c.Keys)
	case c.KeyLength <= 0:
		return fmt.Errorf("%w: key_length must be positive, got %d", ErrInvalidConfig, c.KeyLength)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	for _, name := range c.Cases {
		if !isCaseName(name) {
			return fmt.Errorf("%w: unknown case %q", ErrInvalidConfig, name)
		}
	}
	return nil
}
