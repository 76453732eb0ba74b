package awscred

// Profile is a named section of the credentials file holding an ordered set
// of key-value pairs. Key insertion order is preserved so the file
// serializes the same way it was read.
type Profile struct {
	name   string
	keys   []string
	values map[string]string
}

func newProfile(name string) *Profile {
	return &Profile{
		name:   name,
		values: make(map[string]string),
	}
}

// Name returns the profile name as it appears in the section header.
func (p *Profile) Name() string {
	return p.name
}

// Get returns the value for key and whether the key is present.
func (p *Profile) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set assigns value to key. Assigning an existing key overwrites its value
// but keeps its original position.
func (p *Profile) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Delete removes key from the profile. Deleting an absent key is a no-op.
func (p *Profile) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the profile's keys in insertion order.
func (p *Profile) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of keys in the profile.
func (p *Profile) Len() int {
	return len(p.keys)
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	cp := newProfile(p.name)
	cp.keys = make([]string, len(p.keys))
	copy(cp.keys, p.keys)
	for k, v := range p.values {
		cp.values[k] = v
	}
	return cp
}

// Store is an ordered collection of profiles. Profile names are unique
// within a store and profiles keep the order they were added in.
type Store struct {
	profiles []*Profile
	index    map[string]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Len returns the number of profiles in the store.
func (s *Store) Len() int {
	return len(s.profiles)
}

// Profiles returns the profiles in store order.
func (s *Store) Profiles() []*Profile {
	profiles := make([]*Profile, len(s.profiles))
	copy(profiles, s.profiles)
	return profiles
}

// Lookup returns the named profile and whether it exists.
func (s *Store) Lookup(name string) (*Profile, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.profiles[i], true
}

// Profile returns the named profile, creating an empty one at the end of the
// store if it does not exist. Repeated calls return the same profile.
func (s *Store) Profile(name string) *Profile {
	if p, ok := s.Lookup(name); ok {
		return p
	}
	p := newProfile(name)
	s.index[name] = len(s.profiles)
	s.profiles = append(s.profiles, p)
	return p
}

// Remove deletes the named profile, reporting whether it existed.
func (s *Store) Remove(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
	delete(s.index, name)
	for n, j := range s.index {
		if j > i {
			s.index[n] = j - 1
		}
	}
	return true
}

// Clone returns a deep copy of the store. Mutations through one copy are not
// visible in the other, so callers can snapshot a store before editing it.
func (s *Store) Clone() *Store {
	cp := NewStore()
	for _, p := range s.profiles {
		cp.index[p.name] = len(cp.profiles)
		cp.profiles = append(cp.profiles, p.Clone())
	}
	return cp
}
