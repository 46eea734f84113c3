// Package browser opens links with the operating system's default handler.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
)

var ErrUnsupportedURL = errors.New("only http and https links can be opened")

// startCommand launches a helper without waiting for it. The child is
// reaped in the background so it never blocks the caller.
var startCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Open hands rawURL to the default browser and returns as soon as the
// handler has been started.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}
	if err := openURL(u.String()); err != nil {
		return fmt.Errorf("opening %s: %w", u, err)
	}
	return nil
}
