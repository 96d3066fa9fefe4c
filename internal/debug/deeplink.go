package debug

import (
	"net/url"
	"slices"
	"strings"

	"camerakitsample/internal/deeplink"
)

// ProcessDeepLink applies a debug configuration link, ignoring surrounding
// whitespace. Links that do not parse or carry no recognised command are
// ignored. Setting the API token exits the process with code 0 so the next
// launch starts cleanly with the new token. The process keeps running if the
// token could not be persisted.
func (s *Store) ProcessDeepLink(rawURL string) (applied bool, err error) {
	u, perr := url.Parse(strings.TrimSpace(rawURL))
	if perr != nil {
		s.logf("debug: ignoring unparseable deep link: %v", perr)
		return false, nil
	}
	return s.ProcessDeepLinkURL(u)
}

func (s *Store) ProcessDeepLinkURL(u *url.URL) (applied bool, err error) {
	cmd, ok := deeplink.Parse(u)
	if !ok {
		return false, nil
	}

	switch c := cmd.(type) {
	case deeplink.SetAPIToken:
		if err = s.SetAPIToken(c.Token); err != nil {
			return true, err
		}
		s.exit(0)
	case deeplink.SetGroups:
		err = s.SetGroupIDs(s.withBundledGroup(c.GroupIDs))
	}
	return true, err
}

func (s *Store) withBundledGroup(groups []string) []string {
	if slices.Contains(groups, s.bundledGroup) {
		return groups
	}
	return append([]string{s.bundledGroup}, groups...)
}
