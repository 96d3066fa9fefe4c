// Package deeplink parses debug configuration links of the form
//
//	camerakitsample://debug/apitoken/set/<token>
//	camerakitsample://debug/groups/set/<group1>,<group2>
//
// into commands. The scheme is not checked.
package deeplink

import (
	"net/url"
	"strings"
)

const (
	Host         = "debug"
	ActionSet    = "set"
	TargetToken  = "apitoken"
	TargetGroups = "groups"
)

// Command is one of SetAPIToken or SetGroups.
type Command interface {
	command()
}

// SetAPIToken replaces the API token.
type SetAPIToken struct {
	Token string
}

// SetGroups replaces the lens group IDs. GroupIDs is the raw split value; the
// bundled group is added by whoever applies the command.
type SetGroups struct {
	GroupIDs []string
}

func (SetAPIToken) command() {}
func (SetGroups) command()   {}

// ParseString parses s and returns the command it carries, if any.
func ParseString(s string) (Command, bool) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	return Parse(u)
}

// Parse returns the command carried by u. Links with another host, an unknown
// action or target, or fewer than three path segments are ignored.
func Parse(u *url.URL) (Command, bool) {
	if u == nil || !strings.EqualFold(u.Hostname(), Host) {
		return nil, false
	}

	path := Segments(u.Path)
	if len(path) < 2 || !strings.EqualFold(path[1], ActionSet) {
		return nil, false
	}
	if len(path) < 3 {
		return nil, false
	}

	switch strings.ToLower(path[0]) {
	case TargetToken:
		return SetAPIToken{Token: path[2]}, true
	case TargetGroups:
		return SetGroups{GroupIDs: SplitGroups(path[2])}, true
	default:
		return nil, false
	}
}

// Segments splits a URL path into its components, skipping empty ones the way
// platform path component lists do.
func Segments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitGroups splits a comma separated group list, dropping empty entries.
func SplitGroups(value string) []string {
	groups := []string{}
	for _, g := range strings.Split(value, ",") {
		if g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

// FromArgs picks the arguments that look like links, in order.
func FromArgs(args []string) []string {
	var links []string
	for _, a := range args {
		if strings.Contains(a, "://") {
			links = append(links, a)
		}
	}
	return links
}
