// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const buildValueNotAvailable = "N/A"

// AppBuildInfo is the build metadata injected into the client binary with
// linker flags. Empty values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo normalises the linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return buildValueNotAvailable
	}
	return v
}
