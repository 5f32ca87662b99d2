package domain_test

import (
	"testing"

	"github.com/nfrund/shopfront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSlugFromHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"subdomain", "acme.example.com", "acme"},
		{"deep subdomain", "acme.shops.example.com", "acme"},
		{"subdomain with port", "acme.localhost:3000", "acme"},
		{"no separator", "localhost", "localhost"},
		{"no separator with port", "localhost:8080", "localhost"},
		{"bare domain", "example.com", "example"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SlugFromHost(tt.host))
		})
	}
}
