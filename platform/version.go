package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// CompareVersions compares two dotted numeric versions (format X.Y.Z).
// A leading "v" is ignored and missing components count as zero.
// Returns: -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2.
func CompareVersions(v1, v2 string) int {
	parts1 := strings.Split(strings.TrimPrefix(v1, "v"), ".")
	parts2 := strings.Split(strings.TrimPrefix(v2, "v"), ".")

	maxLen := len(parts1)
	if len(parts2) > maxLen {
		maxLen = len(parts2)
	}

	for i := 0; i < maxLen; i++ {
		var num1, num2 int
		if i < len(parts1) {
			fmt.Sscanf(parts1[i], "%d", &num1)
		}
		if i < len(parts2) {
			fmt.Sscanf(parts2[i], "%d", &num2)
		}

		if num1 < num2 {
			return -1
		}
		if num1 > num2 {
			return 1
		}
	}

	return 0
}

// releaseMajor extracts the leading numeric component of a kernel release
// string, e.g. "6.8.0-45-generic" -> 6. Returns 0 when the string does not
// start with digits.
func releaseMajor(release string) int {
	i := 0
	for i < len(release) && release[i] >= '0' && release[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(release[:i])
	if err != nil {
		return 0
	}
	return n
}
