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

// Package config provides the Papys runtime configuration, loaded from a
// TOML file and overridable via environment variables and command-line flags
package config

import (
	"github.com/BurntSushi/toml"
)

// Config is the main configuration object
type Config struct {
	// Main is the primary MainConfig section
	Main *MainConfig `toml:"main"`
	// Frontend provides configurations about the HTTP Front End
	Frontend *FrontendConfig `toml:"frontend"`
	// Dispatch provides configurations that affect dispatch behavior
	Dispatch *DispatchConfig `toml:"dispatch"`
	// Logging provides configurations that affect logging behavior
	Logging *LoggingConfig `toml:"logging"`
	// Metrics provides configurations for collecting Metrics about the application
	Metrics *MetricsConfig `toml:"metrics"`
	// Tracing provides the distributed tracing configuration
	Tracing *TracingConfig `toml:"tracing"`

	// Flags is the collection of command-line flags parsed during Load
	Flags Flags `toml:"-"`
	// LoaderWarnings holds warnings generated during config load (before the
	// logger is initialized), so they can be logged at the end of the loading process
	LoaderWarnings []string `toml:"-"`
}

// MainConfig is a collection of general configuration values
type MainConfig struct {
	// InstanceID represents a unique ID for the current instance, when multiple instances on the same host
	InstanceID int `toml:"instance_id"`
	// PingHandlerPath provides the path to register the Ping Handler for checking that Papys is running
	PingHandlerPath string `toml:"ping_handler_path"`
}

// FrontendConfig is a collection of configurations for the main http frontend
type FrontendConfig struct {
	// ListenAddress is IP address for the main http listener for the application
	ListenAddress string `toml:"listen_address"`
	// ListenPort is TCP Port for the main http listener for the application
	ListenPort int `toml:"listen_port"`
	// ReadHeaderTimeoutMS is the amount of time the frontend will wait for request headers
	ReadHeaderTimeoutMS int `toml:"read_header_timeout_ms"`
}

// DispatchConfig is a collection of configurations for the dispatch engine
type DispatchConfig struct {
	// PostConvert201 indicates whether a 200 produced by a POST dispatch is
	// reported to the client as a 201
	PostConvert201 bool `toml:"post_convert_201"`
	// ReturnError500Body indicates whether a 500 response carries an error
	// detail body instead of an empty payload
	ReturnError500Body bool `toml:"return_error_500_body"`
	// AcceptDefaultLang is substituted when a request omits the Accept-Language header
	AcceptDefaultLang string `toml:"accept_default_lang"`
	// PathCacheMaxSize is the maximum entry count per method bucket in the
	// path cache before the bucket is cleared
	PathCacheMaxSize int `toml:"path_cache_max_size"`
}

// LoggingConfig is a collection of Logging configurations
type LoggingConfig struct {
	// LogFile provides the filepath to the instance's logfile. Set as empty string to Log to Console
	LogFile string `toml:"log_file"`
	// LogLevel provides the most granular level (e.g., DEBUG, INFO, ERROR) to log
	LogLevel string `toml:"log_level"`
}

// MetricsConfig is a collection of Metrics Collection configurations
type MetricsConfig struct {
	// ListenAddress is IP address from which the Application Metrics are available for pulling at /metrics
	ListenAddress string `toml:"listen_address"`
	// ListenPort is TCP Port from which the Application Metrics are available for pulling at /metrics
	ListenPort int `toml:"listen_port"`
}

// TracingConfig is a collection of Distributed Tracing configurations
type TracingConfig struct {
	// Enabled indicates whether a span is recorded around each dispatch
	Enabled bool `toml:"enabled"`
	// Exporter is the span exporter to use; only "stdout" is currently supported
	Exporter string `toml:"exporter"`
	// SampleRate sets the probability that a span is recorded, between 0.0 and 1.0
	SampleRate float64 `toml:"sample_rate"`
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Main: &MainConfig{
			PingHandlerPath: defaultPingHandlerPath,
		},
		Frontend: &FrontendConfig{
			ListenPort:          defaultFrontendListenPort,
			ReadHeaderTimeoutMS: defaultReadHeaderTimeoutMS,
		},
		Dispatch: &DispatchConfig{
			PostConvert201:    true,
			AcceptDefaultLang: defaultAcceptLang,
			PathCacheMaxSize:  defaultPathCacheMaxSize,
		},
		Logging: &LoggingConfig{
			LogFile:  defaultLogFile,
			LogLevel: defaultLogLevel,
		},
		Metrics: &MetricsConfig{
			ListenPort: defaultMetricsListenPort,
		},
		Tracing: &TracingConfig{
			Exporter:   defaultTracingExporter,
			SampleRate: 1,
		},
		LoaderWarnings: make([]string, 0),
	}
}

func (c *Config) loadFile() error {
	_, err := toml.DecodeFile(c.Flags.ConfigPath, c)
	return err
}
