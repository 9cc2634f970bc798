// Package compat implements the compatibility analysis engine: the
// version-keyed rule knowledge base, the numeric version comparator, and the
// checks that turn a dependency list plus a target Java version into a
// report of upgrade findings.
package compat

import (
	"regexp"
	"strconv"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// CompareVersions compares two version strings numerically and returns -1,
// 0, or 1. All maximal digit runs are extracted in order and compared
// element-wise; a longer sequence beats its strict prefix, so "5.1.0" > "5.1".
//
// Qualifiers ("-RELEASE", ".Final", "-SNAPSHOT") are discarded entirely and
// never affect ordering. When either string contains no digits at all the
// versions are treated as equal: a malformed version must never raise a
// false compatibility alarm.
func CompareVersions(v1, v2 string) int {
	parts1 := versionParts(v1)
	parts2 := versionParts(v2)
	if parts1 == nil || parts2 == nil {
		return 0
	}

	n := len(parts1)
	if len(parts2) < n {
		n = len(parts2)
	}
	for i := 0; i < n; i++ {
		if parts1[i] < parts2[i] {
			return -1
		}
		if parts1[i] > parts2[i] {
			return 1
		}
	}

	switch {
	case len(parts1) < len(parts2):
		return -1
	case len(parts1) > len(parts2):
		return 1
	}
	return 0
}

func versionParts(v string) []int {
	runs := digitRunRe.FindAllString(v, -1)
	if runs == nil {
		return nil
	}
	parts := make([]int, 0, len(runs))
	for _, run := range runs {
		n, err := strconv.Atoi(run)
		if err != nil {
			// Digit run too long for an int; treat the whole version
			// as unparseable.
			return nil
		}
		parts = append(parts, n)
	}
	return parts
}
