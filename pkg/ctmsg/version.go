package ctmsg

// Version is populated at build time via
// -ldflags "-X github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg.Version=...".
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this module.
func WrapperVersion() string {
	return Version
}
