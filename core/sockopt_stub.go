//go:build !linux && !darwin

package core

import "syscall"

// listenControl is a no-op on platforms without the socket options we tune.
func listenControl(network, address string, c syscall.RawConn) error {
	return nil
}
