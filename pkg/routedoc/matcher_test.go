package routedoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMountLiteral(t *testing.T) {
	tests := []struct {
		name     string
		matcher  string
		expected string
		ok       bool
	}{
		{
			name:     "single segment",
			matcher:  `^\/users\/?(?=\/|$)`,
			expected: "/users",
			ok:       true,
		},
		{
			name:     "nested segments",
			matcher:  `^\/api\/v1\/?(?=\/|$)`,
			expected: "/api/v1",
			ok:       true,
		},
		{
			name:     "escaped metacharacters",
			matcher:  `^\/v1\.0\/user\-profiles\/?(?=\/|$)`,
			expected: "/v1.0/user-profiles",
			ok:       true,
		},
		{
			name:     "end anchored",
			matcher:  `^\/admin\/?$`,
			expected: "/admin",
			ok:       true,
		},
		{
			name:     "no tail",
			matcher:  `^\/static`,
			expected: "/static",
			ok:       true,
		},
		{
			name:    "root mount",
			matcher: `^\/?(?=\/|$)`,
			ok:      false,
		},
		{
			name:    "parameter group",
			matcher: `^\/(?:([^\/]+?))\/?(?=\/|$)`,
			ok:      false,
		},
		{
			name:    "unanchored",
			matcher: `\/users\/?(?=\/|$)`,
			ok:      false,
		},
		{
			name:    "quantifier",
			matcher: `^\/files.*`,
			ok:      false,
		},
		{
			name:    "empty",
			matcher: "",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			literal, ok := MountLiteral(tt.matcher)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, literal)
		})
	}
}

func TestMountMatcher_RoundTrip(t *testing.T) {
	prefixes := []string{"/users", "/api/v1", "/v1.0/items", "/orgs/{org}"}

	for _, prefix := range prefixes {
		t.Run(prefix, func(t *testing.T) {
			literal, ok := MountLiteral(MountMatcher(prefix))
			assert.True(t, ok)
			assert.Equal(t, prefix, literal)
		})
	}

	_, ok := MountLiteral(MountMatcher("/"))
	assert.False(t, ok)
}
