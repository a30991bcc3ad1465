package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/everythingcs/backend/internal/model"
)

// clientIP extracts the caller's source IP. The Cloudflare edge header wins;
// behind a generic reverse proxy the first X-Forwarded-For entry is used,
// and a direct connection falls back to RemoteAddr.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// requestMeta builds the edge-supplied client metadata for r. Upstream
// metadata availability is not guaranteed; absent headers yield "".
func requestMeta(r *http.Request) model.RequestMeta {
	return model.RequestMeta{
		IP:             clientIP(r),
		UserAgent:      r.UserAgent(),
		City:           r.Header.Get("CF-IPCity"),
		Continent:      r.Header.Get("CF-IPContinent"),
		Country:        r.Header.Get("CF-IPCountry"),
		Latitude:       r.Header.Get("CF-IPLatitude"),
		Longitude:      r.Header.Get("CF-IPLongitude"),
		Timezone:       r.Header.Get("CF-Timezone"),
		Region:         r.Header.Get("CF-Region"),
		ASOrganization: r.Header.Get("CF-ASOrganization"),
	}
}
