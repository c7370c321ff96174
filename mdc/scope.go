package mdc

// Scope temporarily overrides one key in the calling goroutine's diagnostic
// context. End restores the previous value, or removes the key if it was
// absent. End must be called from the goroutine that created the scope.
type Scope struct {
	key      string
	previous string
	had      bool
	done     bool
}

// NewScope sets key to value and remembers the prior state.
func NewScope(key, value string) *Scope {
	prev, had := Get(key)
	Put(key, value)
	return &Scope{key: key, previous: prev, had: had}
}

// End restores the state the key had before the scope was created.
func (s *Scope) End() {
	if s == nil || s.done {
		return
	}
	s.done = true
	if s.had {
		Put(s.key, s.previous)
	} else {
		Remove(s.key)
	}
}
