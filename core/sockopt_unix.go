//go:build linux || darwin

package core

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// listenControl tunes the listening socket before bind: SO_REUSEADDR for
// fast restarts and TCP_NODELAY, which accepted sockets inherit.
func listenControl(network, address string, c syscall.RawConn) error {
	var serr error
	err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		if serr != nil {
			return
		}
		serr = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	})
	if err != nil {
		return err
	}
	return serr
}
