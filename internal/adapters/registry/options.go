// Package registry defines the activity store interface and errors.
package registry

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithActivities pre-populates the store with entries in the given order.
// Entries with names already present are skipped.
func WithActivities(entries ...Entry) Option {
	return func(s *MemStore) {
		for _, e := range entries {
			if _, ok := s.activities[e.Name]; ok {
				continue
			}
			s.names = append(s.names, e.Name)
			s.activities[e.Name] = e.Activity.Clone()
		}
	}
}
