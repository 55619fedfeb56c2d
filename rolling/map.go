package rolling

// NewMap creates a default rolling number map
func NewMap() Map {
	return &simpleMap{
		numbers: make(map[string]*RollingNumber),
	}
}

func (m *simpleMap) Set(name string, n *RollingNumber) {
	m.mutex.Lock()
	m.numbers[name] = n
	m.mutex.Unlock()
}

func (m *simpleMap) Get(name string) (*RollingNumber, bool) {
	m.mutex.RLock()
	n, ok := m.numbers[name]
	m.mutex.RUnlock()

	return n, ok
}
