package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo describes the binary and the data build it is serving.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	DataRunID string `json:"data_run_id,omitempty"`
}

// Injected via -ldflags "-X".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the binary version and the run id of the served build.
func HandleVersion(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := VersionInfo{
			Version:   versionString(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		}
		if res := src.Result(); res != nil {
			info.DataRunID = res.RunID
		}
		respondJSON(w, http.StatusOK, info)
	}
}

// ldflags win over VERSION.
func versionString() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
