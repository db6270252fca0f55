package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "1.2.0", "unknown", "unknown"
	if got := GetFullVersion(); got != "1.2.0" {
		t.Errorf("Expected 1.2.0, got %s", got)
	}

	GitCommit = "abc123"
	if got := GetFullVersion(); got != "1.2.0 (abc123)" {
		t.Errorf("Expected version with commit, got %s", got)
	}

	BuildDate = "2025-01-02"
	if got := GetFullVersion(); got != "1.2.0 (abc123, built 2025-01-02)" {
		t.Errorf("Expected version with commit and date, got %s", got)
	}
}
