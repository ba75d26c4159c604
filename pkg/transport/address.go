package transport

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported address schemes
const (
	SchemeLocal = "file"
	SchemeGCS   = "gs"
	SchemeS3    = "s3"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// Address of an object, split into the root of the store holding it and the object key
type Address struct {
	Scheme string
	// Root identifies the store: a bucket name, a scheme://host base URL, empty for local files
	Root string
	Key  string
}

func (a Address) String() string {
	switch a.Scheme {
	case SchemeLocal:
		return a.Key
	case SchemeHTTP, SchemeHTTPS:
		return a.Root + "/" + a.Key
	default:
		return a.Scheme + "://" + a.Root + "/" + a.Key
	}
}

// IsLocal tells if the address designates the local file system
func (a Address) IsLocal() bool {
	return a.Scheme == SchemeLocal
}

// ParseAddress splits an address such as gs://bucket/corpuses/JSUT/ver1_1/archive/jsut_ver1.1.zip.
//
// Addresses without a scheme are local paths.
func ParseAddress(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("empty address")
	}
	scheme, rest, found := strings.Cut(raw, "://")
	if !found {
		return Address{Scheme: SchemeLocal, Key: raw}, nil
	}

	switch strings.ToLower(scheme) {
	case SchemeLocal:
		if rest == "" {
			return Address{}, fmt.Errorf("no path in address %q", raw)
		}
		return Address{Scheme: SchemeLocal, Key: rest}, nil
	case SchemeGCS, SchemeS3:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Address{}, fmt.Errorf("expected %s://bucket/key, got %q", scheme, raw)
		}
		return Address{Scheme: strings.ToLower(scheme), Root: bucket, Key: key}, nil
	case SchemeHTTP, SchemeHTTPS:
		u, err := url.Parse(raw)
		if err != nil {
			return Address{}, fmt.Errorf("invalid address %q: %w", raw, err)
		}
		key := strings.TrimPrefix(u.EscapedPath(), "/")
		if u.Host == "" || key == "" {
			return Address{}, fmt.Errorf("expected %s://host/path, got %q", scheme, raw)
		}
		if u.RawQuery != "" {
			key += "?" + u.RawQuery
		}
		return Address{Scheme: u.Scheme, Root: u.Scheme + "://" + u.Host, Key: key}, nil
	default:
		return Address{}, fmt.Errorf("unsupported scheme %q in address %q", scheme, raw)
	}
}
