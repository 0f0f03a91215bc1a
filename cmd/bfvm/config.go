// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// Config holds the settings read from the configuration file. Command line
// flags take precedence.
type Config struct {
	TapeSize  int      `toml:"tape-size"`
	Optimize  bool     `toml:"optimize"`
	Fixpoint  bool     `toml:"fixpoint"`
	Raw       bool     `toml:"raw"`
	Verbosity int      `toml:"verbosity"`
	LogFile   string   `toml:"log-file"`
	With      []string `toml:"with"`
}

func defaultConfig() Config {
	return Config{
		TapeSize: vm.DefaultTapeSize,
		Optimize: true,
		Fixpoint: true,
		Raw:      true,
	}
}

// loadConfig reads the named configuration file on top of the defaults. A
// missing file is not an error unless required is set. Unknown keys are
// returned so that the caller can warn about them.
func loadConfig(name string, required bool) (Config, []string, error) {
	c := defaultConfig()
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return c, nil, nil
		}
		return c, nil, errors.Wrap(err, "failed to read config")
	}
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&c)
	if err != nil {
		return c, nil, errors.Wrapf(err, "failed to parse %s", name)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return c, unknown, nil
}
