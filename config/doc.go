// File: doc.go
// Title: mLang Configuration Package Documentation
// Description: Package config provides configuration management for the mLang
//              toolchain with support for TOML and YAML formats, environment
//              variable overrides, and type-safe access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the mLang toolchain.

Configuration files describe how the compiler front end and the mlangc
command behave: optimization level, output paths, log level, and output
styling. Both TOML and YAML are supported, detected from the file
extension.

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := config.Load("mlangc.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	level := cfg.GetInt("build.optimization", 2)
	output := cfg.GetString("build.output", "a.out")
	color := cfg.GetBool("output.color", true)

# Environment Variable Overrides

Every key can be overridden through the environment using the MLANG
prefix, with dots replaced by underscores:

	# mlangc.toml
	[build]
	optimization = 2

	# Override at invocation time
	MLANG_BUILD_OPTIMIZATION=3 mlangc build main.ml

Environment variables always take precedence over file values. A custom
prefix can be set through LoadOptions.EnvPrefix.

# Defaults

LoadOptions.Defaults fills keys the file does not provide; file values
stay authoritative:

	cfg, err := config.LoadWithOptions("mlangc.toml", config.LoadOptions{
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{
				"level": "warn",
			},
		},
	})

Access is safe for concurrent use. Set changes values at runtime only
and never writes back to the file.
*/
package config
