package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/studiowebux/mensajero/internal/session"
	"github.com/studiowebux/mensajero/internal/types"
)

// Version is overridden at build time with -ldflags "-X ...version.Version=..."
var Version = "0.1.0"

// ReleasesURL points at the latest published release
const ReleasesURL = "https://api.github.com/repos/studiowebux/mensajero/releases/latest"

// Release is the subset of the releases API payload we read
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Update describes the result of a release check
type Update struct {
	Available bool
	Latest    string
	URL       string
}

// CheckForUpdate asks releasesURL for the latest release and compares it with current
func CheckForUpdate(d session.Executor, releasesURL, current string) (*Update, error) {
	spec := &types.RequestSpec{
		Method: types.MethodGet,
		URL:    releasesURL,
		Headers: map[string]string{
			"Accept":     "application/vnd.github+json",
			"User-Agent": "mensajero/" + current,
		},
	}

	out := d.Execute(spec)
	if out == nil {
		return nil, errors.New("no response from release check")
	}
	if out.Failed() {
		return nil, fmt.Errorf("failed to fetch latest release: %s", out.Body)
	}
	if out.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", out.StatusCode)
	}

	var release Release
	if err := json.Unmarshal([]byte(out.Body), &release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	return &Update{
		Available: latest != "" && isNewerVersion(latest, strings.TrimPrefix(current, "v")),
		Latest:    latest,
		URL:       release.HTMLURL,
	}, nil
}

// isNewerVersion reports whether latest > current, ignoring pre-release and build suffixes
func isNewerVersion(latest, current string) bool {
	l := parseVersion(latest)
	c := parseVersion(current)

	for len(l) < len(c) {
		l = append(l, 0)
	}
	for len(c) < len(l) {
		c = append(c, 0)
	}

	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func parseVersion(version string) []int {
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}

	parts := strings.Split(version, ".")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		result = append(result, num)
	}
	return result
}
