// Package datakit holds module-level metadata.
package datakit

// Version is the module version, set at release time.
const Version = "0.1.0"
