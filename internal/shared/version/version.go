package version

import "runtime"

// Build metadata, overridden at build time via
// -ldflags "-X github.com/IT-Union-DAO/tg-admin/internal/shared/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const AppName = "tg-admin"

// Info returns build metadata for the /version endpoint.
func Info() map[string]string {
	return map[string]string{
		"app_name":    AppName,
		"app_version": Version,
		"git_commit":  Commit,
		"build_time":  BuildTime,
		"go_version":  runtime.Version(),
	}
}
