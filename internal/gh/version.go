package gh

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest gh release whose run summary and log output
// formats this tool understands.
const MinVersion = "v2.43.1"

// ErrVersionTooOld means the installed gh CLI predates MinVersion.
var ErrVersionTooOld = errors.New("gh version not supported")

var versionPattern = regexp.MustCompile(`gh version (?P<version>[0-9]+\.[0-9]+\.[0-9]+)`)

// CheckVersion verifies the installed gh CLI meets MinVersion.
func (c *Client) CheckVersion(ctx context.Context) error {
	out, err := c.exec(ctx, "--version")
	if err != nil {
		return err
	}
	return checkVersionOutput(out)
}

func checkVersionOutput(out string) error {
	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		return fmt.Errorf("cannot parse gh version from %q", out)
	}
	if semver.Compare("v"+m[1], MinVersion) < 0 {
		return fmt.Errorf("%w: have %s, need %s or newer", ErrVersionTooOld, m[1], MinVersion[1:])
	}
	return nil
}
