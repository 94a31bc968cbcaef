// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version carries the build version of hposd binaries.
package version

import (
	"fmt"
	"regexp"
	"strings"
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/hybridpos/hposd/hposconfig/version.appBuild=foo"'.
// It is expected to be the output of git describe, for example
// hposd-v0.4.1-12-gfa3ba767-dirty.
var appBuild string

var userAgentName = "unknown" // hposparams, compact2big...
var appMajor uint = 0
var appMinor uint = 0
var appPatch uint = 0
var version = "0.0.0-custom"
var custom = true
var prerelease = false
var dirty = false

var prereleaseRe = regexp.MustCompile(`-[0-9]+-g[0-9a-f]{8}`)

func init() {
	parseBuild(appBuild)
}

func parseBuild(build string) {
	if len(build) == 0 {
		return
	}
	tag := "-custom"
	if _, err := fmt.Sscanf(build, "hposd-v%d.%d.%d", &appMajor, &appMinor, &appPatch); err == nil {
		tag = ""
		custom = false
		if x := prereleaseRe.FindString(build); len(x) > 0 {
			tag += "-" + x[strings.LastIndex(x, "-")+2:]
			prerelease = true
		}
		if strings.Contains(build, "-dirty") {
			tag += "-dirty"
			dirty = true
		}
	}
	version = fmt.Sprintf("%d.%d.%d%s", appMajor, appMinor, appPatch, tag)
}

func IsCustom() bool {
	return custom
}

func IsDirty() bool {
	return dirty
}

func IsPrerelease() bool {
	return prerelease
}

// SetUserAgentName must be called once by each main package.
func SetUserAgentName(ua string) {
	if userAgentName != "unknown" {
		panic("setting useragent to [" + ua +
			"] failed, useragent was already set to [" + userAgentName + "]")
	}
	userAgentName = ua
}

func Version() string {
	return version
}

// UserAgentName is the name the main package registered, or "unknown".
func UserAgentName() string {
	return userAgentName
}

// String is the line printed by --version, e.g. "hposparams version 0.4.1".
func String() string {
	return userAgentName + " version " + version
}
