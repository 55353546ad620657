// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package tracker

import "strings"

// Tab is a named view mode.
type Tab string

const (
	TabAll             Tab = "all"
	TabVisited         Tab = "visited"
	TabToVisit         Tab = "to-visit"
	TabRecommendations Tab = "recommendations"
)

// DefaultTab is the tab shown at startup.
const DefaultTab = TabAll

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabAll, TabVisited, TabToVisit, TabRecommendations}
}

// ParseTab converts s to a Tab. It reports false for unknown names.
func ParseTab(s string) (Tab, bool) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabAll, TabVisited, TabToVisit, TabRecommendations:
		return t, true
	default:
		return "", false
	}
}

func (t Tab) String() string {
	return string(t)
}
