// Package version contains the pedstats version.
package version

// Version is the software version.
const Version = "0.3.0"
