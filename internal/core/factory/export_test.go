package factory

// Reset exposes reset to the external test package.
func (s *CacheState) Reset() { s.reset() }
