// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package harness

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config determines the shape and timing of a packet network.
type Config struct {
	// Size is the number of workers in the network, addressed from 0.
	Size uint
	// ControllerAddress is the reserved address at which packets are captured
	// by the controller rather than delivered to a worker.  This must not
	// overlap with any worker address.
	ControllerAddress int64
	// IdleThreshold is the number of consecutive cycles in which a worker
	// neither receives nor produces anything before it declares itself idle.
	IdleThreshold uint
	// PollInterval is how long workers and the controller sleep between
	// cycles.
	PollInterval time.Duration
	// StatusInterval is the number of cycles after which a worker repeats its
	// current status to the controller, even if unchanged.
	StatusInterval uint
}

// DefaultConfig returns the configuration of the standard fifty node network.
func DefaultConfig() Config {
	return Config{
		Size:              50,
		ControllerAddress: 255,
		IdleThreshold:     3,
		PollInterval:      time.Millisecond,
		StatusInterval:    10,
	}
}

// Validate checks this configuration describes a network which can run.
func (c Config) Validate() error {
	switch {
	case c.Size == 0:
		return errors.New("network size must be positive")
	case c.ControllerAddress >= 0 && c.ControllerAddress < int64(c.Size):
		return errors.Errorf("controller address %d overlaps worker addresses", c.ControllerAddress)
	case c.IdleThreshold == 0:
		return errors.New("idle threshold must be positive")
	case c.PollInterval < 0:
		return errors.New("poll interval cannot be negative")
	case c.StatusInterval == 0:
		return errors.New("status interval must be positive")
	}
	//
	return nil
}

// configFile mirrors the layout of a network configuration file.  Absent keys
// keep their default values.
type configFile struct {
	Network struct {
		Size              *uint   `toml:"size"`
		ControllerAddress *int64  `toml:"controller-address"`
		IdleThreshold     *uint   `toml:"idle-threshold"`
		PollInterval      *string `toml:"poll-interval"`
		StatusInterval    *uint   `toml:"status-interval"`
	} `toml:"network"`
}

// LoadConfig reads a network configuration from a TOML file, such as:
//
//	[network]
//	size = 50
//	controller-address = 255
//	idle-threshold = 3
//	poll-interval = "1ms"
//	status-interval = 10
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read %s", path)
	}
	//
	return ParseConfig(data)
}

// ParseConfig parses a network configuration from TOML text.
func ParseConfig(data []byte) (Config, error) {
	var (
		file   configFile
		config = DefaultConfig()
		net    = &file.Network
	)
	//
	if err := toml.Unmarshal(data, &file); err != nil {
		return config, errors.Wrap(err, "parse error")
	}
	//
	if net.Size != nil {
		config.Size = *net.Size
	}
	//
	if net.ControllerAddress != nil {
		config.ControllerAddress = *net.ControllerAddress
	}
	//
	if net.IdleThreshold != nil {
		config.IdleThreshold = *net.IdleThreshold
	}
	//
	if net.StatusInterval != nil {
		config.StatusInterval = *net.StatusInterval
	}
	//
	if net.PollInterval != nil {
		interval, err := time.ParseDuration(*net.PollInterval)
		if err != nil {
			return config, errors.Wrap(err, "invalid poll-interval")
		}
		//
		config.PollInterval = interval
	}
	//
	return config, config.Validate()
}
