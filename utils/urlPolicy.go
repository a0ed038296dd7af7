package utils

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"coursehub/config"
)

func privateHostsAllowed() bool {
	return config.AppConfig != nil && config.AppConfig.AllowPrivateHosts
}

// ValidateResourceURL checks a resource URL against the fetch policy before
// any network I/O: http/https only, a host must be present, and literal IP
// hosts must be publicly routable. Hostnames are checked again after DNS
// resolution by the transport from SafeTransport, so a record pointing at a
// private address is refused even when the name itself looks harmless.
func ValidateResourceURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed url: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme %q is not allowed", parsed.Scheme)
	}

	host := parsed.Hostname()
	if host == "" {
		return fmt.Errorf("url has no host")
	}

	if privateHostsAllowed() {
		return nil
	}

	lowered := strings.ToLower(host)
	if lowered == "localhost" || strings.HasSuffix(lowered, ".localhost") {
		return fmt.Errorf("host %q is not allowed", host)
	}

	if ip := net.ParseIP(host); ip != nil {
		return checkPublicIP(ip)
	}

	return nil
}

// checkPublicIP rejects loopback, private (10/8, 172.16/12, 192.168/16,
// fc00::/7), link-local and otherwise non-routable addresses.
func checkPublicIP(ip net.IP) error {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsMulticast() || ip.IsUnspecified() {
		return fmt.Errorf("address %s is not publicly routable", ip)
	}
	return nil
}

// SafeTransport returns an HTTP transport whose dialer re-checks the
// resolved address right before connecting, closing the gap between URL
// validation and the actual connection (DNS rebinding, redirects).
func SafeTransport() *http.Transport {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	if !privateHostsAllowed() {
		dialer.Control = func(network, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			ip := net.ParseIP(host)
			if ip == nil {
				return fmt.Errorf("unexpected dial address %q", address)
			}
			return checkPublicIP(ip)
		}
	}

	return &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}
}
