// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a release number of the form MAJOR[.MINOR[.PATCH]][-pre][+build].
// Precision records how many numeric components were present so that
// "1.2" can be rendered back the way it was written.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras holds the pre-release and build suffix including its leading
	// '-' or '+', e.g. "-rc.1+abc123".
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// ParseVersion parses "1", "1.2", "1.2.3", an optional "v" prefix and an
// optional "-pre" or "+build" suffix.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version
	core := s
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		core, v.Extras = s[:i], s[i:]
	}

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	nums := [3]int{}
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, p)
		}
		nums[i] = n
	}

	v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
	v.Precision = len(parts)
	return v, nil
}

// String renders the version with its original precision and suffix.
func (v Version) String() string {
	var core string
	switch v.Precision {
	case 1:
		core = strconv.Itoa(v.Major)
	case 2:
		core = fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		core = fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return core + v.Extras
}

// IsValid reports whether the version has non-negative components and a
// precision of 1, 2 or 3.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	return v.Precision >= 1 && v.Precision <= 3
}
