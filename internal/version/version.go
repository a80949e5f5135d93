package version

// Version is overridden at build time with -ldflags "-X motifscan/internal/version.Version=...".
var Version = "dev"
