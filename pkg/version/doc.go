// Package version parses the release numbers the service reports about
// itself.
//
// APP_VERSION and the -ldflags build version are validated with
// ParseVersion before the server starts, so /version never reports a
// value that is not a release number.
//
//	v, err := version.ParseVersion("v1.4.0-rc.1")
//	// v.Major == 1, v.Minor == 4, v.Extras == "-rc.1"
package version
