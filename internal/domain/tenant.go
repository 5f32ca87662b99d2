package domain

import (
	"net"
	"strings"
)

// Tenant is the public profile of a single shop, addressed by a slug
// derived from the subdomain it is served on.
type Tenant struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Owner  string `json:"owner"`
}

// SlugFromHost derives the tenant slug from a request host: the leading
// label before the first dot. A host with no dot is its own slug. Any
// port suffix is stripped before the label is taken.
func SlugFromHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	slug, _, _ := strings.Cut(host, ".")
	return slug
}
