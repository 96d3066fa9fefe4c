package mocks

import "slices"

// DefaultsMock keeps values in memory unless a func field overrides the call.
type DefaultsMock struct {
	StringFunc     func(key string) (string, bool, error)
	SetStringFunc  func(key, value string) error
	StringsFunc    func(key string) ([]string, bool, error)
	SetStringsFunc func(key string, values []string) error
	RemoveFunc     func(key string) error

	StringValues map[string]string
	ListValues   map[string][]string
	Writes       []string
	Removed      []string
}

func (m *DefaultsMock) String(key string) (string, bool, error) {
	if m.StringFunc != nil {
		return m.StringFunc(key)
	}
	v, ok := m.StringValues[key]
	return v, ok, nil
}

func (m *DefaultsMock) SetString(key, value string) error {
	m.Writes = append(m.Writes, key)
	if m.SetStringFunc != nil {
		return m.SetStringFunc(key, value)
	}
	if m.StringValues == nil {
		m.StringValues = map[string]string{}
	}
	m.StringValues[key] = value
	return nil
}

func (m *DefaultsMock) Strings(key string) ([]string, bool, error) {
	if m.StringsFunc != nil {
		return m.StringsFunc(key)
	}
	v, ok := m.ListValues[key]
	return slices.Clone(v), ok, nil
}

func (m *DefaultsMock) SetStrings(key string, values []string) error {
	m.Writes = append(m.Writes, key)
	if m.SetStringsFunc != nil {
		return m.SetStringsFunc(key, values)
	}
	if m.ListValues == nil {
		m.ListValues = map[string][]string{}
	}
	m.ListValues[key] = slices.Clone(values)
	return nil
}

func (m *DefaultsMock) Remove(key string) error {
	m.Removed = append(m.Removed, key)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(key)
	}
	delete(m.StringValues, key)
	delete(m.ListValues, key)
	return nil
}
