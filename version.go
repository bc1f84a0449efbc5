package jet

// moduleVersion is the jet module's version. Unlike go-metis, there is no
// underlying C library version to report, so there is a single string.
var moduleVersion = "0.1.0-dev"

// Version returns the jet module's version string.
func Version() string {
	return moduleVersion
}
