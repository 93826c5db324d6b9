/*
 * Copyright 2024 The Papys Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"flag"
)

const (
	// Command-line flags
	cfConfig      = "config"
	cfVersion     = "version"
	cfLogLevel    = "log-level"
	cfInstanceID  = "instance-id"
	cfListenPort  = "listen-port"
	cfMetricsPort = "metrics-port"

	// DefaultConfigPath defines the default location of the Papys config file
	DefaultConfigPath = "/etc/papys/papys.conf"
)

// Flags holds the values for whitelisted flags
type Flags struct {
	PrintVersion      bool
	ConfigPath        string
	customPath        bool
	ListenPort        int
	MetricsListenPort int
	LogLevel          string
	InstanceID        int
}

// parseFlags parses the provided arguments into the config's Flags collection
func (c *Config) parseFlags(applicationName string, arguments []string) error {
	f := flag.NewFlagSet(applicationName, flag.ContinueOnError)
	f.BoolVar(&c.Flags.PrintVersion, cfVersion, false, "Prints the Papys version")
	f.StringVar(&c.Flags.ConfigPath, cfConfig, "", "Path to the Papys Config File")
	f.StringVar(&c.Flags.LogLevel, cfLogLevel, "", "Level of Logging to use (debug, info, warn, error)")
	f.IntVar(&c.Flags.InstanceID, cfInstanceID, 0,
		"Instance ID is for running multiple Papys processes from the same config while logging to their own files")
	f.IntVar(&c.Flags.ListenPort, cfListenPort, 0, "Port that the frontend server will listen on")
	f.IntVar(&c.Flags.MetricsListenPort, cfMetricsPort, 0, "Port that the /metrics endpoint will listen on")
	if err := f.Parse(arguments); err != nil {
		return err
	}

	if c.Flags.ConfigPath != "" {
		c.Flags.customPath = true
	} else {
		c.Flags.ConfigPath = DefaultConfigPath
	}
	return nil
}

// loadFlags applies parsed flag values over the file- and env-provided config
func (c *Config) loadFlags() {
	if c.Flags.ListenPort > 0 {
		c.Frontend.ListenPort = c.Flags.ListenPort
	}
	if c.Flags.MetricsListenPort > 0 {
		c.Metrics.ListenPort = c.Flags.MetricsListenPort
	}
	if c.Flags.LogLevel != "" {
		c.Logging.LogLevel = c.Flags.LogLevel
	}
	if c.Flags.InstanceID > 0 {
		c.Main.InstanceID = c.Flags.InstanceID
	}
}
