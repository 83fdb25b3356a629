package network

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

// returns the first site-local IPv4 address of an up, non-loopback interface
func DetectLanIPv4() *string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		if ip := firstPrivateIPv4(addrs); ip != "" {
			return &ip
		}
	}

	return nil
}

func firstPrivateIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP

		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}

		if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() && ip4.IsPrivate() {
			return ip4.String()
		}
	}

	return ""
}

// "https" for TLS or a proxy saying so, "http" otherwise
func Scheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); strings.EqualFold(proto, "https") {
		return "https"
	}

	return "http"
}

// port the request arrived on, fallback when the Host header carries none
func ServerPort(r *http.Request, fallback int) int {
	if _, port, err := net.SplitHostPort(r.Host); err == nil {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}

	return fallback
}
