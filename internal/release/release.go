// Package release checks whether a newer grimoire release is published.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ErrDevBuild is returned when the running binary carries no release version.
var ErrDevBuild = errors.New("development build has no release version")

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultOwner      = "abhisek"
	defaultRepo       = "grimoire"
)

// Checker queries the latest published release.
type Checker struct {
	client     *http.Client
	apiBaseURL string
	owner      string
	repo       string
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) { ch.client = c }
}

// WithAPIBaseURL points the checker at a different API host.
func WithAPIBaseURL(u string) Option {
	return func(ch *Checker) { ch.apiBaseURL = strings.TrimRight(u, "/") }
}

// WithRepository overrides the GitHub repository.
func WithRepository(owner, repo string) Option {
	return func(ch *Checker) {
		ch.owner = owner
		ch.repo = repo
	}
}

// NewChecker creates a Checker for the grimoire repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: 10 * time.Second},
		apiBaseURL: defaultAPIBaseURL,
		owner:      defaultOwner,
		repo:       defaultRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput names the running version.
type CheckInput struct {
	Version string
}

// CheckResult compares the running version with the latest release.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with input.Version.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := Canonical(input.Version)
	if current == "" {
		return nil, fmt.Errorf("%w: %q", ErrDevBuild, input.Version)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var rel githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := Canonical(rel.TagName)
	if latest == "" {
		return nil, fmt.Errorf("latest release tag %q is not a semantic version", rel.TagName)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: semver.Compare(latest, current) > 0,
	}, nil
}

// Canonical normalizes v to the "vMAJOR.MINOR.PATCH" form, adding the
// leading "v" when missing. It returns "" for non-semver input such as
// "(devel)".
func Canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
