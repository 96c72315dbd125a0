package config

import "github.com/headgate/sluice/internal/content"

// SampleArticles returns the built-in article set used when the config
// names none. Bodies are markdown; the reader renders them styled.
func SampleArticles() []content.Article {
	return []content.Article{
		{
			ID:    1,
			Title: "One-way traffic",
			Content: `# One-way traffic

State flows in a single direction: an action goes in, a new state comes
out, and the view redraws from the result.

- Actions describe *intent*, not mechanics.
- Reducers are pure: same inputs, same output.
- The view owns no state of its own.

The payoff is that any state the app has ever been in can be rebuilt by
replaying the same actions in the same order.
`,
		},
		{
			ID:    2,
			Title: "Slices stay strangers",
			Content: `# Slices stay strangers

Each feature owns one slice of the composite state and the actions that
change it. A slice never reads another slice's data.

` + "```" + `
AppState
├── User      ← login, logout, updateProfile
├── Settings  ← toggleDarkMode, changeLanguage
└── Content   ← loadArticles, toggleFavorite
` + "```" + `

Because slices are strangers, the order they reduce in cannot matter,
and adding a feature never touches an existing one.
`,
		},
		{
			ID:    3,
			Title: "Copy, don't mutate",
			Content: `# Copy, don't mutate

A published state is frozen. Transitions build fresh copies of whatever
they change:

` + "```go" + `
history := make([]int, len(s.History), len(s.History)+1)
copy(history, s.History)
s.History = append(history, s.Value)
` + "```" + `

Anyone still holding yesterday's state keeps exactly what they saw.
Snapshots that age gracefully make time-travel debugging, diffing, and
auditing almost free.
`,
		},
		{
			ID:    4,
			Title: "Reading the log",
			Content: `# Reading the log

Run the demo with a transition log and every dispatch leaves a line:

` + "```" + `
time=12:04:11 level=DEBUG msg="state published" counter=3
time=12:04:12 level=DEBUG msg="state published" counter=4
` + "```" + `

The log is an ordinary observer. It subscribes like the UI does and
sees the same states in the same order, which makes it a faithful
record of everything that happened.
`,
		},
	}
}
