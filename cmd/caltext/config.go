// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/caltext/calstore"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

const defaultDatabase = "caltext.db"

// Config represents the optional yaml configuration file, eg:
//
//	database: holidays.db
//	logging:
//	  level: 2
//	  format: text
//	values:
//	  - name: thanksgiving
//	    kind: month-weekday
//	    value: Nov/Thu[4]
//	  - name: memorial-day
//	    kind: month-weekday-last
//	    value: May/Mon[last]
type Config struct {
	Database string                `yaml:"database"`
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
	Values   []calstore.Seed       `yaml:"values"`
}

type ConfigFlags struct {
	Config string `subcmd:"config,,'yaml configuration file'"`
}

type DatabaseFlags struct {
	Database string `subcmd:"database,,'sqlite database file, overrides the configuration file, defaults to caltext.db'"`
}

type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFlags
}

type storeFlags struct {
	cmdutil.LoggingFlags
	ConfigFlags
	DatabaseFlags
}

func loadConfig(ctx context.Context, cf ConfigFlags) (Config, error) {
	var cfg Config
	if len(cf.Config) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup reads the configuration file, if any, and returns a context
// containing the logger it, or the logging flags, specify. The returned
// function must be called to close the logger.
func setup(ctx context.Context, lf cmdutil.LoggingFlags, cf ConfigFlags) (context.Context, Config, func(), error) {
	cfg, err := loadConfig(ctx, cf)
	if err != nil {
		return ctx, cfg, nil, err
	}
	lc := lf.LoggingConfig()
	if cfg.Logging != (cmdutil.LoggingConfig{}) {
		lc = cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, cfg, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	if len(cf.Config) > 0 {
		logger.Debug("configuration loaded", "file", cf.Config, "values", len(cfg.Values))
	}
	return ctx, cfg, func() { logger.Close() }, nil
}

func databasePath(cfg Config, df DatabaseFlags) string {
	switch {
	case len(df.Database) > 0:
		return df.Database
	case len(cfg.Database) > 0:
		return cfg.Database
	}
	return defaultDatabase
}

func openStore(ctx context.Context, lf cmdutil.LoggingFlags, cf ConfigFlags, df DatabaseFlags) (context.Context, *calstore.Store, Config, func(), error) {
	ctx, cfg, done, err := setup(ctx, lf, cf)
	if err != nil {
		return ctx, nil, cfg, nil, err
	}
	store, err := calstore.Open(ctx, databasePath(cfg, df))
	if err != nil {
		done()
		return ctx, nil, cfg, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return ctx, store, cfg, func() {
		store.Close()
		done()
	}, nil
}
