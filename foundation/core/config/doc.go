// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the
//              PolyCall tools with support for TOML and YAML formats.
//              Features include automatic file discovery, environment
//              variable injection, validation, hot-reloading, and
//              type-safe access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the PolyCall tools.

Package: config
Title: Core Configuration Management
Description: Provides configuration management for the polycall CLI and the
             Polycallfile engine with support for TOML and YAML formats,
             environment variable injection, hot-reloading, and type-safe
             access patterns.
Author: msto63
Version: v0.1.0
Created: 2026-08-17
Modified: 2026-08-17

Change History:
- 2026-08-17 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • File discovery across working directory, home, and system paths
  • Environment variable injection and override capabilities
  • Validation with structured rules and struct binding
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access patterns
  • Structured error codes for CLI exit status mapping

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := pcconfig.Load(".polycall.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	logLevel := cfg.GetString("logging.level", "info")
	maxDepth := cfg.GetInt("engine.max_expansion_depth", 64)
	strict := cfg.GetBool("engine.strict_eval", true)

# Configuration File Discovery

The polycall CLI looks for its settings in the conventional locations
instead of demanding a --config flag:

	cfg, err := pcconfig.DiscoverWithDefaults()

The default search order is ".polycall.toml" (or "polycall.toml", plus
the .yaml/.yml variants) in the working directory, then the user's home
and ~/.config/polycall, then /etc/polycall. A missing file is not an
error; the tools run on built-in defaults and environment overrides.

# Environment Variable Integration

Configuration values are automatically overridden by environment
variables following a consistent naming convention:

	# .polycall.toml
	[engine]
	max_expansion_depth = 64
	strict_eval = true

	[logging]
	level = "info"
	format = "console"

	# Environment variables (with the POLYCALL prefix)
	export POLYCALL_ENGINE_MAX_EXPANSION_DEPTH="128"
	export POLYCALL_LOGGING_LEVEL="debug"

	cfg, _ := pcconfig.LoadWithOptions(".polycall.toml", pcconfig.LoadOptions{
		EnvPrefix: "POLYCALL",
	})

	// Environment variables take precedence
	depth := cfg.GetInt("engine.max_expansion_depth") // Returns 128
	level := cfg.GetString("logging.level")           // Returns "debug"

# Configuration Validation

Validate configuration structure and constraints before handing values
to the engine:

	rules := pcconfig.ValidationRules{
		"engine.max_expansion_depth": {
			Type: "int",
			Min:  1,
			Max:  1024,
		},
		"logging.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error)$`,
			Default: "info",
		},
		"logging.format": {
			Type:    "string",
			Pattern: `^(json|text|console|logfmt)$`,
			Default: "console",
		},
	}

	if result := cfg.Validate(rules); !result.Valid {
		for _, msg := range result.Errors {
			pclog.Warn(msg)
		}
	}

# Struct Binding

Bind a configuration section onto a typed struct:

	type engineSettings struct {
		MaxInputLength    int           `config:"max_input_length"`
		MaxExpansionDepth int           `config:"max_expansion_depth"`
		StrictEval        bool          `config:"strict_eval"`
		Timeout           time.Duration `config:"timeout"`
	}

	var settings engineSettings
	if err := cfg.BindToStruct("engine", &settings); err != nil {
		return err
	}

# Hot-Reloading and Change Notifications

Long-running commands can monitor the configuration file for changes:

	cfg, err := pcconfig.LoadWithOptions(".polycall.toml", pcconfig.LoadOptions{
		Watch: true,
	})

	cfg.OnChange(func(oldCfg, newCfg *pcconfig.Config) {
		if oldCfg.GetString("logging.level") != newCfg.GetString("logging.level") {
			pclog.Info("log level changed")
		}
	})

The watcher polls the file modification time; the interval can be tuned
with LoadOptions.WatchInterval.

# String-Based Configuration Loading

Load configuration from string content:

	yamlContent := `
	engine:
	  strict_eval: false
	logging:
	  level: debug
	`

	cfg, err := pcconfig.LoadFromString(yamlContent, pcconfig.FormatYAML)

# Convenience Methods

Quick access patterns for common operations:

	level := cfg.S("logging.level", "info")        // GetString
	depth := cfg.I("engine.max_expansion_depth")   // GetInt
	strict := cfg.B("engine.strict_eval", true)    // GetBool
	epsilon := cfg.F("eval.epsilon", 1e-10)        // GetFloat
	refresh := cfg.D("inspect.refresh", time.Second) // GetDuration
	exts := cfg.SS("check.extensions")             // GetStringSlice

# Error Handling

All loading and binding operations return structured errors whose codes
map onto CLI exit status:

	cfg, err := pcconfig.Load("missing.toml")
	if err != nil {
		if pcerror.HasCode(err, pcerror.CodeMissingConfig) {
			// fall back to defaults
		}
		os.Exit(pcerror.GetCode(err).ExitCode())
	}

# Thread Safety Guarantees

All operations are thread-safe and support concurrent access:

  - Value access (Get* methods): concurrent reads under a shared lock
  - Environment variable lookups: cached with a bounded TTL
  - Configuration updates: atomic updates with proper synchronization
  - Change notifications: callbacks run outside the configuration lock
*/
package config
