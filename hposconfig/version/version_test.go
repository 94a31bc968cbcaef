// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetVersion() {
	appMajor, appMinor, appPatch = 0, 0, 0
	version = "0.0.0-custom"
	custom, prerelease, dirty = true, false, false
}

func TestParseBuild(t *testing.T) {
	tests := []struct {
		build      string
		want       string
		custom     bool
		prerelease bool
		dirty      bool
	}{
		{"", "0.0.0-custom", true, false, false},
		{"hposd-v1.2.3", "1.2.3", false, false, false},
		{"hposd-v0.4.1-12-gfa3ba767", "0.4.1-fa3ba767", false, true, false},
		{"hposd-v0.4.1-12-gfa3ba767-dirty", "0.4.1-fa3ba767-dirty", false, true, true},
		{"something-else", "0.0.0-custom", true, false, false},
	}

	for i, test := range tests {
		resetVersion()
		parseBuild(test.build)
		if Version() != test.want {
			t.Errorf("Version #%d\n got: %s want: %s", i, Version(), test.want)
		}
		if IsCustom() != test.custom || IsPrerelease() != test.prerelease ||
			IsDirty() != test.dirty {

			t.Errorf("flags #%d: got custom=%v prerelease=%v dirty=%v",
				i, IsCustom(), IsPrerelease(), IsDirty())
		}
	}
	resetVersion()
}

func TestUserAgentName(t *testing.T) {
	defer func() { userAgentName = "unknown" }()
	resetVersion()
	parseBuild("hposd-v0.4.1")

	require.Equal(t, "unknown", UserAgentName())
	SetUserAgentName("hposparams")
	require.Equal(t, "hposparams", UserAgentName())
	require.Equal(t, "hposparams version 0.4.1", String())
	require.Panics(t, func() { SetUserAgentName("checkaddr") })
	resetVersion()
}
