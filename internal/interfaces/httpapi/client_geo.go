package httpapi

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const unknownCountry = "ZZ"

// Edge proxies in front of the API report the caller in one of these headers.
// The first usable value wins.
var (
	clientIPHeaders      = []string{"Fly-Client-IP", "CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{"Fly-Client-Country", "CF-IPCountry", "X-Vercel-IP-Country", "CloudFront-Viewer-Country"}
)

// clientOrigin is the caller as seen through the edge, for request logs.
type clientOrigin struct {
	IP      string
	Country string
}

func resolveClientOrigin(r *http.Request) clientOrigin {
	origin := clientOrigin{Country: unknownCountry}

	for _, header := range clientIPHeaders {
		if addr, ok := parseClientAddr(r.Header.Get(header)); ok {
			origin.IP = addr.String()
			break
		}
	}
	if origin.IP == "" {
		if addr, ok := parseClientAddr(r.RemoteAddr); ok {
			origin.IP = addr.String()
		}
	}

	for _, header := range clientCountryHeaders {
		if code, ok := parseCountryCode(r.Header.Get(header)); ok {
			origin.Country = code
			break
		}
	}
	return origin
}

// parseClientAddr accepts a bare address, host:port, or the first entry of a
// forwarded-for list.
func parseClientAddr(raw string) (netip.Addr, bool) {
	first, _, _ := strings.Cut(raw, ",")
	value := strings.TrimSpace(first)
	if value == "" {
		return netip.Addr{}, false
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func parseCountryCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", false
	}
	return code, true
}
