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
	"fmt"
)

// Load returns the Application Configuration, starting with a default config,
// then overriding with any provided config file, then env vars, and finally flags
func Load(applicationName string, applicationVersion string, arguments []string) (*Config, error) {
	c := NewConfig()
	if err := c.parseFlags(applicationName, arguments); err != nil {
		return nil, err
	}
	if c.Flags.PrintVersion {
		return c, nil
	}
	if err := c.loadFile(); err != nil {
		if c.Flags.customPath {
			// a user-provided path couldn't be loaded. return the error for the application to handle
			return nil, err
		}
		c.LoaderWarnings = append(c.LoaderWarnings,
			fmt.Sprintf("no config file found at %s, using defaults", c.Flags.ConfigPath))
	}

	c.loadEnvVars()
	c.loadFlags() // load parsed flags to override file and envs

	if c.Dispatch.PathCacheMaxSize < 1 {
		c.LoaderWarnings = append(c.LoaderWarnings,
			"path_cache_max_size must be positive, using default")
		c.Dispatch.PathCacheMaxSize = defaultPathCacheMaxSize
	}

	return c, nil
}
