package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// semver is major, minor and patch. Pre-release and build suffixes are dropped.
type semver [3]int

func parse(s string) (v semver, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if core, _, found := strings.Cut(s, "-"); found {
		s = core
	}
	if core, _, found := strings.Cut(s, "+"); found {
		s = core
	}

	parts := strings.Split(s, ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q is not major.minor.patch", s)
	}

	for i, part := range parts {
		if v[i], err = strconv.Atoi(part); err != nil || v[i] < 0 {
			return v, fmt.Errorf("version %q: bad number %q", s, part)
		}
	}

	return v, nil
}

// Compare returns 1 when a is newer than b, -1 when it is older and 0 otherwise.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if c := cmp.Compare(av[i], bv[i]); c != 0 {
			return c, nil
		}
	}

	return 0, nil
}
