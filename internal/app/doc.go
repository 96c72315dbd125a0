// Package app provides the orchestration layer for the sluice demo.
//
// # Overview
//
// This package is the composition root: it loads configuration, builds the
// two stores, attaches the transition log, seeds the article list, and runs
// the UI until the user quits or the context is cancelled. Nothing else in
// the repository knows how the pieces fit together.
//
// # Architecture
//
// Run follows a straight-line initialization:
//
//  1. Load configuration from -config or ~/.config/sluice-demo/config.toml
//  2. Open the transition log when a path is given (flag wins over config)
//  3. Build the counter store at its zero state
//  4. Build the app store with settings seeded from configuration
//  5. Subscribe one transition logger per store
//  6. Dispatch LoadArticles with the configured or sample articles
//  7. Run the TUI and block
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read startup configuration
//	       ├─────> counter.NewStore()  Counter store
//	       ├─────> appstate.NewStore() Composed user/settings/content store
//	       ├─────> watchStores()       Transition-log observers
//	       ├─────> Dispatch(LoadArticles) Seed content through the store
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # The Transition Log
//
// The log is deliberately not a middleware layer. It is an ordinary
// subscriber registered through the store's public Subscribe, so it
// exercises the same publication path the UI could use and proves nothing
// in the core is special-cased for it. One debug line per published state;
// no log path configured means a no-op logger and zero overhead beyond the
// subscription itself.
package app
