package model

import (
	"testing"
)

func TestVersionBefore(t *testing.T) {
	positiveTestCases := []struct {
		a, b Version
	}{
		{
			a: Version{Major: 0, Patch: 0},
			b: Version{Major: 1, Patch: 0},
		},
		{
			a: Version{Major: 1, Patch: 0},
			b: Version{Major: 1, Patch: 1},
		},
		{
			a: Version{Major: 1, Patch: 6},
			b: Version{Major: 2, Patch: 0},
		},
	}

	negativeTestCases := []struct {
		a, b Version
	}{
		{
			a: Version{Major: 1, Patch: 0},
			b: Version{Major: 0, Patch: 0},
		},
		{
			a: Version{Major: 1, Patch: 0},
			b: Version{Major: 1, Patch: 0},
		},
		{
			a: Version{Major: 1, Patch: 1},
			b: Version{Major: 1, Patch: 0},
		},
	}

	for _, tc := range positiveTestCases {
		if !tc.a.Before(tc.b) {
			t.Errorf("got %s before %s = false, wanted true", tc.a, tc.b)
		}
	}

	for _, tc := range negativeTestCases {
		if tc.a.Before(tc.b) {
			t.Errorf("got %s before %s = true, wanted false", tc.a, tc.b)
		}
	}
}

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		s       string
		want    Version
		wantErr bool
	}{
		{s: "1.6", want: Version{Major: 1, Patch: 6}},
		{s: "0.0", want: Version{Major: 0, Patch: 0}},
		{s: "1", wantErr: true},
		{s: "1.6.2", wantErr: true},
		{s: "one.two", wantErr: true},
		{s: "", wantErr: true},
	}

	for _, tc := range testCases {
		v, err := ParseVersion(tc.s)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parse %q: wanted error, got none", tc.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("parse %q: unexpected error: %v", tc.s, err)
			continue
		}
		if v != tc.want {
			t.Errorf("parse %q: got %s, wanted %s", tc.s, v, tc.want)
		}
	}
}
