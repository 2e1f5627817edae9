package models

// AppBuildInfo describes the running binary. Values are injected with
// -ldflags at build time and default to "N/A".
type AppBuildInfo struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// NewAppBuildInfo fills missing values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		BuildVersion: orNA(version),
		BuildDate:    orNA(date),
		BuildCommit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
