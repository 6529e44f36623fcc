package factlane

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/factlane/factlane.Version=...".
var Version = "0.1.0"
