//go:build !prod

package database

// GetDefaultDBPath returns the database path for development mode, next to the
// working directory so the file is easy to inspect.
func GetDefaultDBPath() string {
	return "camerakitsample.db"
}

// IsDevelopment reports whether this is a development build.
func IsDevelopment() bool {
	return true
}
