// Package config handles loading and parsing the demo's configuration file.
//
// # Overview
//
// This package reads a small TOML file that seeds the demo at startup: the
// initial settings slice, the article list, and an optional transition-log
// path. Configuration flows one way, into the initial state; nothing the
// stores do afterwards is ever written back. State persistence is a
// different concern and deliberately absent.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sluice-demo/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/sluice-demo/config.toml
//   - language: "en"
//   - dark_mode: false
//   - notifications: true
//   - log_file: none (transition logging disabled)
//   - articles: built-in samples (see SampleArticles)
//
// # TOML Format
//
// Example config.toml:
//
//	language = "es"
//	dark_mode = true
//	notifications = false
//	log_file = "~/.local/state/sluice-demo/demo.log"
//
//	[[articles]]
//	id = 1
//	title = "Hello"
//	content = """
//	# Hello
//
//	Article bodies are markdown and render styled in the reader.
//	"""
//
// Every field is optional. Boolean fields distinguish "absent" from an
// explicit false, so `notifications = false` is honored rather than
// defaulted away. Tilde expansion is performed on paths. Article bodies are
// kept verbatim; only titles are trimmed.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// A missing config file is NOT an error. The demo works out of the box with
// no file at all.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//
//	store, err := appstate.NewStore(appstate.AppState{
//		Settings: cfg.InitialSettings(),
//	})
package config
