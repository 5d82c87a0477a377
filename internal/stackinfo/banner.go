package stackinfo

import "strings"

const positionMarker = "**Stack Position:"

// StripBanner removes a previously rendered stack banner from a PR body so a
// fresh one can be appended. The banner is the region from the horizontal
// rule preceding the position marker through the next closing rule. Bodies
// without a banner are returned unchanged.
func StripBanner(body string) string {
	lines := strings.Split(body, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" && i+1 < len(lines) &&
			strings.HasPrefix(strings.TrimSpace(lines[i+1]), positionMarker) {
			start = i
			break
		}
	}
	if start == -1 {
		return body
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		end = len(lines) - 1
	}

	remaining := append(append([]string{}, lines[:start]...), lines[end+1:]...)
	return strings.TrimRight(strings.Join(remaining, "\n"), " \n")
}
