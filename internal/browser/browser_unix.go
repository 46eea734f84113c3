//go:build !windows && !darwin

package browser

func openURL(u string) error {
	return startCommand("xdg-open", u)
}
