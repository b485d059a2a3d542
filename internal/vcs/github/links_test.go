package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinks(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "empty header",
			header: "",
			want:   map[string]string{},
		},
		{
			name:   "next and last",
			header: `<https://api.github.com/repos/owner/repo/issues?page=2>; rel="next", <https://api.github.com/repos/owner/repo/issues?page=5>; rel="last"`,
			want: map[string]string{
				RelNext: "https://api.github.com/repos/owner/repo/issues?page=2",
				"last":  "https://api.github.com/repos/owner/repo/issues?page=5",
			},
		},
		{
			name:   "all four relations",
			header: `<https://x.test/i?page=1>; rel="prev", <https://x.test/i?page=3>; rel="next", <https://x.test/i?page=5>; rel="last", <https://x.test/i?page=1>; rel="first"`,
			want: map[string]string{
				"prev":  "https://x.test/i?page=1",
				RelNext: "https://x.test/i?page=3",
				"last":  "https://x.test/i?page=5",
				"first": "https://x.test/i?page=1",
			},
		},
		{
			name:   "query string is kept opaque",
			header: `<https://api.github.com/repositories/1/issues?state=open&per_page=30&page=2>; rel="next"`,
			want: map[string]string{
				RelNext: "https://api.github.com/repositories/1/issues?state=open&per_page=30&page=2",
			},
		},
		{
			name:   "last duplicate wins",
			header: `<https://x.test/a>; rel="next", <https://x.test/b>; rel="next"`,
			want:   map[string]string{RelNext: "https://x.test/b"},
		},
		{
			name:   "malformed segments are skipped",
			header: `garbage, <https://x.test/a>, https://x.test/b; rel="next", <https://x.test/c>; rel=last, <https://x.test/d>; rel="prev"`,
			want:   map[string]string{"prev": "https://x.test/d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLinks(tt.header))
		})
	}
}
