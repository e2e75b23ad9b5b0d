package locale

import (
	"sync"
)

// Listener reacts to a language change. It is where direction-dependent
// presentation state gets updated.
type Listener func(Language, Direction)

// Adapter holds the active language and notifies listeners when it changes.
// Calculations never consult it.
type Adapter struct {
	listeners []Listener
	current   Language
	mu        sync.Mutex
}

// NewAdapter creates an adapter starting in lang.
func NewAdapter(lang Language) *Adapter {
	if lang != Persian {
		lang = English
	}
	return &Adapter{current: lang}
}

// Current returns the active language.
func (a *Adapter) Current() Language {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Subscribe registers l and immediately applies the current language to it.
func (a *Adapter) Subscribe(l Listener) {
	a.mu.Lock()
	a.listeners = append(a.listeners, l)
	current := a.current
	a.mu.Unlock()

	l(current, current.Direction())
}

// SetLanguage switches the active language and notifies listeners when it changed.
func (a *Adapter) SetLanguage(lang Language) {
	a.mu.Lock()
	if lang == a.current {
		a.mu.Unlock()
		return
	}
	a.current = lang
	listeners := append([]Listener(nil), a.listeners...)
	a.mu.Unlock()

	for _, l := range listeners {
		l(lang, lang.Direction())
	}
}

// Toggle switches between English and Persian and returns the new language.
func (a *Adapter) Toggle() Language {
	next := Persian
	if a.Current() == Persian {
		next = English
	}
	a.SetLanguage(next)
	return next
}

// Translate resolves key in the active language.
func (a *Adapter) Translate(key string) string {
	return Translate(a.Current(), key)
}
