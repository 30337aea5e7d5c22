package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-github/v59/github"
	goversion "github.com/hashicorp/go-version"
)

const (
	// DefaultInterval is the rolling window between background checks.
	DefaultInterval = 24 * time.Hour

	// npmPackage is the published package name on the npm registry. The
	// registry listing is shared with the JS distribution of the packs.
	npmPackage = "skillpack"

	githubOwner = "skillpackhq"
	githubRepo  = "skillpack"

	defaultRegistryURL = "https://registry.npmjs.org"

	requestTimeout = 5 * time.Second
)

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Checker performs version lookups against the package registry and the
// release feed. Every lookup swallows network, status, and parse failures:
// the result is simply empty. Zero-value fields fall back to production
// defaults, so tests can inject a clock, state path, and endpoints.
type Checker struct {
	Version     string // running version, compared against the latest
	StatePath   string
	Interval    time.Duration
	RegistryURL string
	HTTPClient  *http.Client
	Releases    *github.Client
	Now         func() time.Time
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Checker) statePath() string {
	if c.StatePath != "" {
		return c.StatePath
	}
	return DefaultStatePath()
}

func (c *Checker) interval() time.Duration {
	if c.Interval != 0 {
		return c.Interval
	}
	return DefaultInterval
}

func (c *Checker) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: requestTimeout}
}

func (c *Checker) registryURL() string {
	if c.RegistryURL != "" {
		return strings.TrimSuffix(c.RegistryURL, "/")
	}
	return defaultRegistryURL
}

// LatestRegistryVersion fetches the registry's latest published version.
// Any failure returns the empty string.
func (c *Checker) LatestRegistryVersion(ctx context.Context) string {
	url := fmt.Sprintf("%s/%s/latest", c.registryURL(), npmPackage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Version
}

// LatestReleaseTag fetches the latest release tag from the release feed.
// Any failure returns the empty string.
func (c *Checker) LatestReleaseTag(ctx context.Context) string {
	client := c.Releases
	if client == nil {
		client = github.NewClient(c.httpClient())
	}
	release, _, err := client.Repositories.GetLatestRelease(ctx, githubOwner, githubRepo)
	if err != nil || release == nil || release.TagName == nil {
		return ""
	}
	return *release.TagName
}

// Newer reports whether latest is a newer version than current. Labels
// that don't parse as versions fall back to plain inequality.
func Newer(current, latest string) bool {
	if latest == "" {
		return false
	}
	cur := strings.TrimPrefix(current, "v")
	lat := strings.TrimPrefix(latest, "v")

	cv, err1 := goversion.NewVersion(cur)
	lv, err2 := goversion.NewVersion(lat)
	if err1 != nil || err2 != nil {
		return cur != lat
	}
	return lv.GreaterThan(cv)
}

// Notice is the handle for a detached background check. The dispatcher
// flushes it after the main command output so the upgrade hint never
// interleaves with the command's own report.
type Notice struct {
	ch chan string
}

// Background starts a detached registry lookup if one is due. It returns
// nil when the check is skipped: offline runs, the dedicated update
// command, the notifier kill switch, or a check within the interval.
// Entering the checking state persists the timestamp before the network
// call so a concurrent invocation does not re-trigger it.
func (c *Checker) Background(offline bool) *Notice {
	if offline {
		return nil
	}
	if os.Getenv("SKILLPACK_NO_UPDATE_NOTIFIER") != "" || os.Getenv("NO_UPDATE_NOTIFIER") != "" {
		return nil
	}

	st := LoadState(c.statePath())
	if !st.Due(c.now(), c.interval()) {
		return nil
	}

	// Persist first; a failed or in-flight lookup must not re-arm the gate.
	_ = SaveState(c.statePath(), State{LastCheck: c.now().UnixMilli()})

	n := &Notice{ch: make(chan string, 1)}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		n.ch <- c.LatestRegistryVersion(ctx)
	}()
	return n
}

// Flush waits up to wait for the background lookup and prints an upgrade
// notice if a newer version was found. A nil Notice is a no-op, as is a
// lookup that has not resolved in time — the process exits regardless.
func (n *Notice) Flush(w io.Writer, version string, wait time.Duration) {
	if n == nil {
		return
	}
	select {
	case latest := <-n.ch:
		if Newer(version, latest) {
			fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf(
				"\nA new version of skillpack is available: %s -> %s\nRun `npm install -g %s` or grab the latest release to upgrade.",
				version, latest, npmPackage)))
		}
	case <-time.After(wait):
	}
}

// Report performs the foreground check for the update command: both
// lookups, synchronous, no rate limiting. It prints a definitive result
// and never returns an error.
func (c *Checker) Report(ctx context.Context, w io.Writer, offline bool) {
	if offline {
		fmt.Fprintln(w, "Offline: skipping update check.")
		return
	}

	latest := c.LatestRegistryVersion(ctx)
	tag := c.LatestReleaseTag(ctx)

	if latest == "" && tag == "" {
		fmt.Fprintln(w, "No update information available.")
		return
	}

	if Newer(c.Version, latest) || (latest == "" && Newer(c.Version, tag)) {
		newest := latest
		if newest == "" {
			newest = tag
		}
		fmt.Fprintf(w, "New version available: %s -> %s\n", c.Version, newest)
		if tag != "" {
			fmt.Fprintf(w, "Latest release: %s (https://github.com/%s/%s/releases)\n", tag, githubOwner, githubRepo)
		}
		return
	}

	fmt.Fprintf(w, "skillpack %s is up to date.\n", c.Version)
}
