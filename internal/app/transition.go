package app

import (
	"log/slog"

	"github.com/headgate/sluice"
	"github.com/headgate/sluice/internal/appstate"
	"github.com/headgate/sluice/internal/counter"
)

// watchStores subscribes a transition logger to both stores and returns a
// function that removes them. The loggers are plain observers: they see
// exactly the states every other subscriber sees, in the same order, which
// makes the log a faithful record of the session.
func watchStores(logger *slog.Logger, counterStore *sluice.Store[counter.State], appStore *sluice.Store[appstate.AppState]) (stop func()) {
	unsubCounter := counterStore.Subscribe(func(s counter.State) {
		logger.Debug("state published",
			"store", "counter",
			"value", s.Value,
			"history", len(s.History),
		)
	})

	unsubApp := appStore.Subscribe(func(s appstate.AppState) {
		logger.Debug("state published",
			"store", "app",
			"logged_in", s.User.LoggedIn,
			"username", s.User.Username,
			"dark_mode", s.Settings.DarkMode,
			"notifications", s.Settings.Notifications,
			"language", s.Settings.Language,
			"articles", len(s.Content.Articles),
			"favorites", s.Content.FavoriteCount(),
		)
	})

	return func() {
		unsubCounter()
		unsubApp()
	}
}
