package module

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goplus/apkver/pkgs/apk"
)

var _ VersionComparator = apk.Compare

func TestParseVersion(t *testing.T) {
	tests := []struct {
		arg  string
		want Version
	}{
		{"busybox@1.36.1-r2", Version{ID: "busybox", Version: "1.36.1-r2"}},
		{"busybox", Version{ID: "busybox"}},
		{"busybox@", Version{ID: "busybox"}},
		{"multiple@at@signs", Version{ID: "multiple@at", Version: "signs"}},
		{"", Version{}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			if got := ParseVersion(tt.arg); got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{ID: "musl", Version: "1.2.4-r2"}, "musl@1.2.4-r2"},
		{Version{ID: "musl"}, "musl"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Version.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSort(t *testing.T) {
	list := []Version{
		{ID: "zlib", Version: "1.3-r0"},
		{ID: "musl", Version: "1.2.4-r2"},
		{ID: "musl", Version: "1.2.4_rc1"},
		{ID: "musl", Version: "1.2.4"},
		{ID: "musl", Version: "1.2.3"},
	}
	Sort(apk.Compare, list)

	want := []Version{
		{ID: "musl", Version: "1.2.3"},
		{ID: "musl", Version: "1.2.4_rc1"},
		{ID: "musl", Version: "1.2.4"},
		{ID: "musl", Version: "1.2.4-r2"},
		{ID: "zlib", Version: "1.3-r0"},
	}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("Sort() = %v, want %v", list, want)
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 string
		want   string
	}{
		{"v2 newer", "1.0", "1.1", "1.1"},
		{"v1 newer", "1.0-r1", "1.0", "1.0-r1"},
		{"pre-release", "1.0_rc1", "1.0", "1.0"},
		{"empty v1", "", "1.0", ""},
		{"empty v2", "1.0", "", ""},
		{"both empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Max(apk.Compare, tt.v1, tt.v2); got != tt.want {
				t.Errorf("Max(%q, %q) = %q, want %q", tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}

func TestMax_Tie(t *testing.T) {
	// compare on length only, so "ab" and "cd" tie
	byLen := func(v1, v2 string) int { return len(v1) - len(v2) }
	if got := Max(byLen, "ab", "cd"); got != "ab" {
		t.Errorf("Max() on tie = %q, want %q", got, "ab")
	}
	if got := Max(strings.Compare, "ab", "cd"); got != "cd" {
		t.Errorf("Max() = %q, want %q", got, "cd")
	}
}

func TestLatest(t *testing.T) {
	list := []Version{
		{ID: "zlib", Version: "1.3-r0"},
		{ID: "musl", Version: "1.2.4"},
		{ID: "musl", Version: "1.2.4-r2"},
		{ID: "musl", Version: "1.2.4_rc1"},
		{ID: "zlib", Version: "1.2.13-r1"},
	}
	want := []Version{
		{ID: "musl", Version: "1.2.4-r2"},
		{ID: "zlib", Version: "1.3-r0"},
	}
	if got := Latest(apk.Compare, list); !reflect.DeepEqual(got, want) {
		t.Errorf("Latest() = %v, want %v", got, want)
	}

	if got := Latest(apk.Compare, nil); len(got) != 0 {
		t.Errorf("Latest(nil) = %v, want empty", got)
	}
}
