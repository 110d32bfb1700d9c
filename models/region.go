// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Region is a store country code that decides which reviews are visible.
type Region string

// Supported regions, in selector order.
const (
	RegionUS Region = "US"
	RegionIN Region = "IN"
	RegionGB Region = "GB"
	RegionCA Region = "CA"
	RegionAU Region = "AU"
)

// DefaultRegion is preselected in both user interfaces.
const DefaultRegion = RegionUS

var regions = []Region{RegionUS, RegionIN, RegionGB, RegionCA, RegionAU}

// Regions returns the supported regions in selector order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// ParseRegion resolves a case-insensitive region code.
func ParseRegion(s string) (Region, bool) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range regions {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	for _, known := range regions {
		if r == known {
			return true
		}
	}
	return false
}

// StoreCode returns the lower-case form the store expects in the gl parameter.
func (r Region) StoreCode() string {
	return strings.ToLower(string(r))
}

// Review count bounds offered by the count control.
const (
	MinReviewCount  = 10
	MaxReviewCount  = 200
	ReviewCountStep = 10
)
