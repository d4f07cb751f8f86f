package internal

// Version is the quintus release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/quintus/internal.Version=..."
var Version = "0.3.0"
