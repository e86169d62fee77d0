package build

// Version is the release version, set at link time with
// -ldflags "-X github.com/suse/saas-tools/pkg/build.Version=v1.2.3".
var Version = "v0.0.0-dev"

// UserAgent identifies this tool in outbound requests.
func UserAgent() string {
	return "saas-tools/" + Version
}
