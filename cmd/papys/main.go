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

// Package main is the main package for the Papys application
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/asderix/papys/internal/config"
	"github.com/asderix/papys/internal/engine"
	"github.com/asderix/papys/internal/util/metrics"
	"github.com/asderix/papys/internal/util/tracing"

	tl "github.com/asderix/papys/internal/util/log"
)

const (
	applicationName    = "papys"
	applicationVersion = "0.9.0"
)

func main() {
	conf, err := config.Load(applicationName, applicationVersion, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		os.Exit(1)
	}
	if conf.Flags.PrintVersion {
		fmt.Println(applicationVersion)
		return
	}

	logger := tl.New(conf.Logging, conf.Main.InstanceID)
	defer logger.Close()

	logger.Info("application start up", tl.Pairs{
		"name":     applicationName,
		"version":  applicationVersion,
		"logLevel": conf.Logging.LogLevel,
	})
	for _, w := range conf.LoaderWarnings {
		logger.Warn(w, tl.Pairs{})
	}

	metrics.Init()
	metrics.ListenAndServe(conf.Metrics, logger)

	tracer, flush, err := tracing.New(conf.Tracing)
	if err != nil {
		logger.Fatal(1, "unable to initialize tracing", tl.Pairs{"detail": err.Error()})
	}
	if flush != nil {
		defer flush(context.Background())
	}

	e := engine.New(conf, logger)
	if tracer != nil {
		e.SetTracer(tracer)
	}
	if err := registerRoutes(e, conf); err != nil {
		logger.Fatal(1, "unable to register routes", tl.Pairs{"detail": err.Error()})
	}

	addr := fmt.Sprintf("%s:%d", conf.Frontend.ListenAddress, conf.Frontend.ListenPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: time.Duration(conf.Frontend.ReadHeaderTimeoutMS) * time.Millisecond,
	}

	logger.Info("frontend http server starting", tl.Pairs{"address": addr})
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal(1, "exiting", tl.Pairs{"detail": err.Error()})
	}
}
