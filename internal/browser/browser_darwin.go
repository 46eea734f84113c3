package browser

func openURL(u string) error {
	return startCommand("open", u)
}
