package github

import "strings"

// RelNext is the Link relation the crawler follows.
const RelNext = "next"

// ParseLinks maps each relation of an RFC 5988 Link header to its URL.
//
// Format: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
//
// Malformed segments are skipped. A repeated relation keeps the last URL.
func ParseLinks(header string) map[string]string {
	links := make(map[string]string)
	if header == "" {
		return links
	}

	for _, segment := range strings.Split(header, ",") {
		parts := strings.SplitN(strings.TrimSpace(segment), ";", 2)
		if len(parts) != 2 {
			continue
		}

		target := strings.TrimSpace(parts[0])
		if len(target) < 2 || !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		rel := strings.TrimSpace(parts[1])
		if !strings.HasPrefix(rel, `rel="`) || !strings.HasSuffix(rel, `"`) || len(rel) < len(`rel=""`) {
			continue
		}

		links[rel[len(`rel="`):len(rel)-1]] = target[1 : len(target)-1]
	}

	return links
}
