// Package content implements the article slice: the loaded article list and
// the reader's favorites.
package content

import "github.com/headgate/sluice"

// Article is an immutable content item. Favorites are tracked by id in the
// slice state, never on the article itself.
type Article struct {
	ID      int
	Title   string
	Content string
}

// State is the content slice. The article list is owned by the state;
// Favorites is a set of article ids.
type State struct {
	Articles  []Article
	Favorites map[int]struct{}
}

// IsFavorite reports whether id is in the favorites set. Safe on the zero
// value.
func (s State) IsFavorite(id int) bool {
	_, ok := s.Favorites[id]
	return ok
}

// FavoriteCount returns the size of the favorites set.
func (s State) FavoriteCount() int {
	return len(s.Favorites)
}

// Get returns the article with the given id.
func (s State) Get(id int) (Article, bool) {
	for _, a := range s.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// Action is implemented by every content action; the set is closed to this
// package.
type Action interface {
	contentAction()
}

// LoadArticles replaces the article list wholesale.
type LoadArticles struct {
	Articles []Article
}

// ToggleFavorite inserts id into the favorites set if absent, removes it if
// present.
type ToggleFavorite struct {
	ID int
}

// ClearFavorites empties the favorites set.
type ClearFavorites struct{}

func (LoadArticles) contentAction()   {}
func (ToggleFavorite) contentAction() {}
func (ClearFavorites) contentAction() {}

// Reduce applies a content action to s. Transitions copy the collections
// they change; states already published stay frozen.
func Reduce(s State, action sluice.Action) State {
	act, ok := action.(Action)
	if !ok {
		return s
	}

	switch act := act.(type) {
	case LoadArticles:
		s.Articles = cloneArticles(act.Articles)
	case ToggleFavorite:
		favorites := make(map[int]struct{}, len(s.Favorites)+1)
		for id := range s.Favorites {
			favorites[id] = struct{}{}
		}
		if _, ok := favorites[act.ID]; ok {
			delete(favorites, act.ID)
		} else {
			favorites[act.ID] = struct{}{}
		}
		s.Favorites = favorites
	case ClearFavorites:
		s.Favorites = nil
	}
	return s
}

func cloneArticles(articles []Article) []Article {
	if len(articles) == 0 {
		return nil
	}
	dup := make([]Article, len(articles))
	copy(dup, articles)
	return dup
}

// Reducer adapts Reduce for store construction.
func Reducer() sluice.Reducer[State] {
	return sluice.ReducerFunc[State](Reduce)
}
