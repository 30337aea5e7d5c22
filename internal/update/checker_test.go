package update

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v59/github"
)

func registryServer(t *testing.T, version string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		if r.URL.Path != "/skillpack/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"version": %q}`, version)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatestRegistryVersion(t *testing.T) {
	srv := registryServer(t, "2.3.4", nil)
	c := &Checker{RegistryURL: srv.URL}

	if got := c.LatestRegistryVersion(context.Background()); got != "2.3.4" {
		t.Errorf("LatestRegistryVersion() = %q", got)
	}
}

func TestLatestRegistryVersion_SwallowsFailures(t *testing.T) {
	// Non-200 status.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Checker{RegistryURL: srv.URL}
	if got := c.LatestRegistryVersion(context.Background()); got != "" {
		t.Errorf("want empty on 500, got %q", got)
	}

	// Malformed payload.
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer srv2.Close()

	c2 := &Checker{RegistryURL: srv2.URL}
	if got := c2.LatestRegistryVersion(context.Background()); got != "" {
		t.Errorf("want empty on bad payload, got %q", got)
	}

	// Unreachable endpoint.
	c3 := &Checker{RegistryURL: "http://127.0.0.1:0"}
	if got := c3.LatestRegistryVersion(context.Background()); got != "" {
		t.Errorf("want empty on connection failure, got %q", got)
	}
}

func TestLatestReleaseTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"tag_name": "v3.0.0"}`)
	}))
	defer srv.Close()

	gh := github.NewClient(nil)
	base, _ := url.Parse(srv.URL + "/")
	gh.BaseURL = base

	c := &Checker{Releases: gh}
	if got := c.LatestReleaseTag(context.Background()); got != "v3.0.0" {
		t.Errorf("LatestReleaseTag() = %q", got)
	}
}

func TestNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.0", "1.0.0", false},
		{"1.0.1", "1.0.0", false},
		{"1.0.0", "", false},
		{"v1.2.0", "1.10.0", true}, // numeric, not lexicographic
		{"dev", "1.0.0", true},     // unparsable falls back to inequality
		{"dev", "dev", false},
	}
	for _, tt := range tests {
		if got := Newer(tt.current, tt.latest); got != tt.want {
			t.Errorf("Newer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestBackground_RateLimited(t *testing.T) {
	var hits atomic.Int32
	srv := registryServer(t, "9.9.9", &hits)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := &Checker{
		Version:     "1.0.0",
		StatePath:   filepath.Join(t.TempDir(), "update-check.json"),
		RegistryURL: srv.URL,
		Now:         func() time.Time { return now },
	}

	// First call: due, persists the timestamp, performs the lookup.
	n := c.Background(false)
	if n == nil {
		t.Fatal("first Background() returned nil")
	}
	var buf bytes.Buffer
	n.Flush(&buf, "1.0.0", 5*time.Second)
	if !strings.Contains(buf.String(), "9.9.9") {
		t.Errorf("notice missing latest version: %q", buf.String())
	}
	if hits.Load() != 1 {
		t.Fatalf("expected 1 registry hit, got %d", hits.Load())
	}

	st := LoadState(c.StatePath)
	if st.LastCheck != now.UnixMilli() {
		t.Errorf("timestamp not persisted: %d", st.LastCheck)
	}

	// Second call within the window: no network activity at all.
	if n := c.Background(false); n != nil {
		t.Error("second Background() within the window should return nil")
	}
	if hits.Load() != 1 {
		t.Errorf("registry hit again within the window: %d", hits.Load())
	}

	// Advance the clock past the interval: due again.
	now = now.Add(24*time.Hour + time.Minute)
	n = c.Background(false)
	if n == nil {
		t.Fatal("Background() after the window should fire")
	}
	n.Flush(&buf, "1.0.0", 5*time.Second)
	if hits.Load() != 2 {
		t.Errorf("expected 2 registry hits, got %d", hits.Load())
	}
}

func TestBackground_Suppressed(t *testing.T) {
	var hits atomic.Int32
	srv := registryServer(t, "9.9.9", &hits)
	c := &Checker{
		Version:     "1.0.0",
		StatePath:   filepath.Join(t.TempDir(), "update-check.json"),
		RegistryURL: srv.URL,
	}

	if n := c.Background(true); n != nil {
		t.Error("offline run should suppress the check")
	}

	t.Setenv("SKILLPACK_NO_UPDATE_NOTIFIER", "1")
	if n := c.Background(false); n != nil {
		t.Error("kill-switch env should suppress the check")
	}

	if hits.Load() != 0 {
		t.Errorf("suppressed checks hit the network %d time(s)", hits.Load())
	}
}

func TestNoticeFlush_NilAndUpToDate(t *testing.T) {
	var buf bytes.Buffer

	var n *Notice
	n.Flush(&buf, "1.0.0", time.Millisecond) // nil handle is a no-op

	n = &Notice{ch: make(chan string, 1)}
	n.ch <- "1.0.0"
	n.Flush(&buf, "1.0.0", time.Second)
	if buf.Len() != 0 {
		t.Errorf("up-to-date flush printed: %q", buf.String())
	}
}

func TestReport(t *testing.T) {
	srv := registryServer(t, "2.0.0", nil)
	ghSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
	}))
	defer ghSrv.Close()

	gh := github.NewClient(nil)
	base, _ := url.Parse(ghSrv.URL + "/")
	gh.BaseURL = base

	c := &Checker{Version: "1.0.0", RegistryURL: srv.URL, Releases: gh}

	var buf bytes.Buffer
	c.Report(context.Background(), &buf, false)
	out := buf.String()
	if !strings.Contains(out, "New version available: 1.0.0 -> 2.0.0") {
		t.Errorf("report = %q", out)
	}
	if !strings.Contains(out, "v2.0.0") {
		t.Errorf("report missing release tag: %q", out)
	}

	// Up to date.
	buf.Reset()
	c.Version = "2.0.0"
	c.Report(context.Background(), &buf, false)
	if !strings.Contains(buf.String(), "up to date") {
		t.Errorf("report = %q", buf.String())
	}

	// Offline short-circuits before any lookup.
	buf.Reset()
	c.Report(context.Background(), &buf, true)
	if !strings.Contains(buf.String(), "Offline") {
		t.Errorf("report = %q", buf.String())
	}
}
