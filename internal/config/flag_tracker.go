package config

import (
	"sync"

	"github.com/spf13/pflag"
)

// FlagTracker provides thread-safe tracking of explicitly set flags so CLI
// values can take precedence over config file values only when the user
// actually passed them.
type FlagTracker struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewFlagTracker creates a new thread-safe flag tracker
func NewFlagTracker() *FlagTracker {
	return &FlagTracker{
		flags: make(map[string]bool),
	}
}

// NewFlagTrackerFromFlagSet records every flag the user changed
func NewFlagTrackerFromFlagSet(flags *pflag.FlagSet) *FlagTracker {
	tracker := NewFlagTracker()
	flags.Visit(func(f *pflag.Flag) {
		tracker.Set(f.Name)
	})
	return tracker
}

// Set marks a flag as explicitly set
func (ft *FlagTracker) Set(flagName string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.flags[flagName] = true
}

// WasSet checks if a flag was explicitly set
func (ft *FlagTracker) WasSet(flagName string) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.flags[flagName]
}

// Count returns the number of explicitly set flags
func (ft *FlagTracker) Count() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return len(ft.flags)
}
