//go:build !linux

package ui

// RemoteJustPressed is a no-op on non-Linux platforms.
func RemoteJustPressed(k RemoteKey) bool {
	return false
}
