package saltid

import "sync"

var defaultMutex sync.Mutex
var defaultInstantiated bool
var defaultRegistry *Registry
var defaultGenerator *Generator

// Default returns the process-wide default generator. It is constructed
// on first use by drawing the first salt from the default registry, so
// its salt is always 0. It lives for the process lifetime and is shared
// by every caller that does not manage its own generator, which makes
// the single-writer caveat on Generator apply across all of them.
func Default() *Generator {
	instantiateDefaults()
	return defaultGenerator
}

// DefaultRegistry returns the process-wide registry that backs Default.
// Callers that want their own partition draw from it with NextSalt or
// NextGenerator.
func DefaultRegistry() *Registry {
	instantiateDefaults()
	return defaultRegistry
}

func instantiateDefaults() {
	if defaultInstantiated {
		return
	}

	defaultMutex.Lock()
	if defaultInstantiated {
		defaultMutex.Unlock()
		return
	}

	defaultRegistry = NewRegistry()
	defaultGenerator = defaultRegistry.NextGenerator()
	defaultInstantiated = true

	defaultMutex.Unlock()
}
