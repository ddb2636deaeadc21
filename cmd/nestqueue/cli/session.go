// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/digitalnest/nestqueue/lib/api"
)

// Built-in session defaults, used when neither flags nor the config
// file override them.
const (
	// DefaultServerURL is the local development ticket service.
	DefaultServerURL = "http://localhost:8080"

	// DefaultCreatedBy is the shared identity stamped on tickets
	// created from an unconfigured install.
	DefaultCreatedBy = "techsquad@digitalnest.org"
)

// configPathEnv overrides the config file location.
const configPathEnv = "NESTQUEUE_CONFIG"

// SessionConfig holds the shared flags for reaching the ticket
// service. Values resolve in precedence order: explicit flags, then
// the YAML config file, then built-in defaults.
//
// The config file is YAML with two keys:
//
//	server: https://tickets.digitalnest.org
//	created_by: esteban@digitalnest.org
//
// Its location is --config, then $NESTQUEUE_CONFIG, then
// ~/.config/nestqueue/config.yaml. A missing file at the default
// location is not an error; a missing file named explicitly is.
//
// Usage pattern:
//
//	var session cli.SessionConfig
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        flagSet := pflag.NewFlagSet("mycommand", pflag.ContinueOnError)
//	        session.AddFlags(flagSet)
//	        return flagSet
//	    },
//	    Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
//	        sess, err := session.Resolve(logger)
//	        ...
//	    },
//	}
type SessionConfig struct {
	ConfigFile string
	ServerURL  string
	CreatedBy  string
}

// AddFlags registers --config, --server, and --created-by on the
// given flag set.
func (c *SessionConfig) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.ConfigFile, "config", "", "path to config file (default: $NESTQUEUE_CONFIG, then ~/.config/nestqueue/config.yaml)")
	flagSet.StringVar(&c.ServerURL, "server", "", "ticket service base URL (overrides config file)")
	flagSet.StringVar(&c.CreatedBy, "created-by", "", "identity stamped on created tickets (overrides config file)")
}

// Session is the resolved connection configuration.
type Session struct {
	ServerURL string
	CreatedBy string
}

// fileConfig is the on-disk config file shape. Unknown keys are
// rejected so typos surface instead of silently falling back to
// defaults.
type fileConfig struct {
	Server    string `yaml:"server"`
	CreatedBy string `yaml:"created_by"`
}

// Resolve merges flags, the config file, and defaults into a Session.
func (c *SessionConfig) Resolve() (Session, error) {
	session := Session{
		ServerURL: c.ServerURL,
		CreatedBy: c.CreatedBy,
	}

	path, required := c.configPath()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			var file fileConfig
			decoder := yaml.NewDecoder(bytes.NewReader(raw))
			decoder.KnownFields(true)
			if err := decoder.Decode(&file); err != nil {
				return Session{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			if session.ServerURL == "" {
				session.ServerURL = file.Server
			}
			if session.CreatedBy == "" {
				session.CreatedBy = file.CreatedBy
			}
		case os.IsNotExist(err) && !required:
			// No config at the default location; defaults apply.
		default:
			return Session{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if session.ServerURL == "" {
		session.ServerURL = DefaultServerURL
	}
	if session.CreatedBy == "" {
		session.CreatedBy = DefaultCreatedBy
	}
	return session, nil
}

// configPath returns the config file location and whether the file
// must exist (true when the user named it explicitly).
func (c *SessionConfig) configPath() (path string, required bool) {
	if c.ConfigFile != "" {
		return c.ConfigFile, true
	}
	if env := os.Getenv(configPathEnv); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "nestqueue", "config.yaml"), false
}

// NewClient creates an API client for the resolved session.
func (s Session) NewClient(logger *slog.Logger) (*api.Client, error) {
	client, err := api.NewClient(api.Config{
		BaseURL: s.ServerURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("configure API client for %s: %w", s.ServerURL, err)
	}
	return client, nil
}
