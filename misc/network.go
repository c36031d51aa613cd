package misc

import (
	"net"
	"strconv"
)

// FreeAddress asks the kernel for an unused tcp port on host and returns it as host:port
func FreeAddress(host string) (string, error) {
	addr, err := net.ResolveTCPAddr("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return "", err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return "", err
	}
	port := l.Addr().(*net.TCPAddr).Port

	if err := l.Close(); err != nil {
		return "", err
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}
