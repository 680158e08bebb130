package version

// Version is overridden at build time via:
//
//	-ldflags "-X wormbucket/internal/version.Version=vX.Y.Z"
var Version = "dev"
