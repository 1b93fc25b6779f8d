// Package version implements dotted-numeric version comparison and the
// specifier resolution rules shared by every managed toolchain.
package version

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNoMatch indicates that a specifier matched no candidate version.
var ErrNoMatch = errors.New("no matching version")

// Compare orders two dot-separated version strings numerically per
// component, so 1.21.9 < 1.21.10. Missing components count as zero.
func Compare(a, b string) int {
	aParts := numericParts(a)
	bParts := numericParts(b)
	for len(aParts) < len(bParts) {
		aParts = append(aParts, 0)
	}
	for len(bParts) < len(aParts) {
		bParts = append(bParts, 0)
	}
	for i := range aParts {
		if aParts[i] < bParts[i] {
			return -1
		}
		if aParts[i] > bParts[i] {
			return 1
		}
	}
	return 0
}

// Sort orders versions ascending using Compare.
func Sort(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
}

// Resolve maps a user specifier to one of the candidate versions. An exact
// match always wins; otherwise the specifier is treated as a component
// prefix (so "1.21" matches "1.21.x" but not "1.210.x") and the greatest
// matching version is selected. Returns ErrNoMatch when nothing matches.
func Resolve(spec string, candidates []string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", fmt.Errorf("resolve version: empty specifier: %w", ErrNoMatch)
	}

	for _, v := range candidates {
		if v == spec {
			return v, nil
		}
	}

	prefix := spec + "."
	var matches []string
	for _, v := range candidates {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("version %s: %w", spec, ErrNoMatch)
	}
	Sort(matches)
	return matches[len(matches)-1], nil
}

// Latest picks the greatest version among candidates, optionally restricted
// to those matching spec (exact or component prefix). An empty spec means
// no restriction. Used against remote version indexes during install.
func Latest(spec string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("latest version: empty index: %w", ErrNoMatch)
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		sorted := append([]string(nil), candidates...)
		Sort(sorted)
		return sorted[len(sorted)-1], nil
	}
	return Resolve(spec, candidates)
}

func numericParts(version string) []int {
	var parts []int
	current := strings.Builder{}
	for _, r := range version {
		if r >= '0' && r <= '9' {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			val, _ := strconv.Atoi(current.String())
			parts = append(parts, val)
			current.Reset()
		}
	}
	if current.Len() > 0 {
		val, _ := strconv.Atoi(current.String())
		parts = append(parts, val)
	}
	return parts
}
