package version

// Version is overridden at build time with -ldflags "-X contigpad/internal/version.Version=...".
var Version = "0.1.0"
