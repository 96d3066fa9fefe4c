package mocks

// TokenSourceMock reports Token as the bundled API token unless Missing is set.
type TokenSourceMock struct {
	Token   string
	Missing bool
}

func (m TokenSourceMock) APIToken() (string, bool) {
	if m.Missing {
		return "", false
	}
	return m.Token, true
}
