package wizard

import "fmt"

// Factory builds a Game from a GameConfig. Host frameworks that keep a
// catalog of game types by name can use Lookup instead of importing NewGame
// directly.
type Factory func(GameConfig) (*Game, error)

var registry = map[string]Factory{}

// Register adds factory under name to the process-wide registry.
// Re-registering an existing name is a programming error and panics: the
// registry is meant to be populated once, at init time.
func Register(name string, factory Factory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("wizard: game %q already registered", name))
	}
	registry[name] = factory
}

// Lookup returns the factory registered under name, if any.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

func init() {
	Register("wizard", NewGame)
}
