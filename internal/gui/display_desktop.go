//go:build !nogui && (windows || darwin)

package gui

func hasDisplay() bool {
	return true
}
