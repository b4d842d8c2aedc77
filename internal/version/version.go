package version

// Version is the build version, overridden at link time with
// -ldflags "-X github.com/CameronXie/coffee-api/internal/version.Version=<tag>".
var Version = "dev"
