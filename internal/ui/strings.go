package ui

// labels holds the user-facing strings for one display language. Key hints
// are not localized; they come from the key map.
type labels struct {
	TabCounter  string
	TabProfile  string
	TabSettings string
	TabArticles string

	CounterValue   string
	CounterHistory string
	HistoryEmpty   string

	LoggedOut   string
	LoggedInAs  string
	Username    string
	Password    string
	Email       string
	LoginTitle  string
	EditTitle   string
	NotSet      string

	DarkMode      string
	Notifications string
	Language      string
	On            string
	Off           string

	ArticlesEmpty string
	Favorites     string
}

var labelSets = map[string]labels{
	"en": {
		TabCounter:  "Counter",
		TabProfile:  "Profile",
		TabSettings: "Settings",
		TabArticles: "Articles",

		CounterValue:   "Value",
		CounterHistory: "History",
		HistoryEmpty:   "(empty)",

		LoggedOut:  "Logged out",
		LoggedInAs: "Logged in as",
		Username:   "Username",
		Password:   "Password",
		Email:      "Email",
		LoginTitle: "Log in",
		EditTitle:  "Edit profile",
		NotSet:     "(not set)",

		DarkMode:      "Dark mode",
		Notifications: "Notifications",
		Language:      "Language",
		On:            "on",
		Off:           "off",

		ArticlesEmpty: "(no articles)",
		Favorites:     "Favorites",
	},
	"es": {
		TabCounter:  "Contador",
		TabProfile:  "Perfil",
		TabSettings: "Ajustes",
		TabArticles: "Artículos",

		CounterValue:   "Valor",
		CounterHistory: "Historial",
		HistoryEmpty:   "(vacío)",

		LoggedOut:  "Sesión cerrada",
		LoggedInAs: "Sesión de",
		Username:   "Usuario",
		Password:   "Contraseña",
		Email:      "Correo",
		LoginTitle: "Iniciar sesión",
		EditTitle:  "Editar perfil",
		NotSet:     "(sin definir)",

		DarkMode:      "Modo oscuro",
		Notifications: "Notificaciones",
		Language:      "Idioma",
		On:            "sí",
		Off:           "no",

		ArticlesEmpty: "(sin artículos)",
		Favorites:     "Favoritos",
	},
	"fr": {
		TabCounter:  "Compteur",
		TabProfile:  "Profil",
		TabSettings: "Réglages",
		TabArticles: "Articles",

		CounterValue:   "Valeur",
		CounterHistory: "Historique",
		HistoryEmpty:   "(vide)",

		LoggedOut:  "Déconnecté",
		LoggedInAs: "Connecté :",
		Username:   "Utilisateur",
		Password:   "Mot de passe",
		Email:      "Courriel",
		LoginTitle: "Connexion",
		EditTitle:  "Modifier le profil",
		NotSet:     "(non défini)",

		DarkMode:      "Mode sombre",
		Notifications: "Notifications",
		Language:      "Langue",
		On:            "oui",
		Off:           "non",

		ArticlesEmpty: "(aucun article)",
		Favorites:     "Favoris",
	},
}

var languageOrder = []string{"en", "es", "fr"}

var languageDisplay = map[string]string{
	"en": "English",
	"es": "Español",
	"fr": "Français",
}

// labelsFor returns the label set for a language tag, falling back to
// English for anything unknown. The settings slice stores tags verbatim, so
// unknown values are expected, not errors.
func labelsFor(lang string) labels {
	if l, ok := labelSets[lang]; ok {
		return l
	}
	return labelSets["en"]
}

// nextLanguage returns the next language tag in the cycle.
func nextLanguage(current string) string {
	for i, lang := range languageOrder {
		if lang == current {
			return languageOrder[(i+1)%len(languageOrder)]
		}
	}
	return languageOrder[0]
}

// displayLanguage returns a human name for a language tag, or the tag
// itself when it is not one of ours.
func displayLanguage(lang string) string {
	if name, ok := languageDisplay[lang]; ok {
		return name
	}
	return lang
}
