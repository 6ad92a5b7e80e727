// Package environment names the deployment environment. The logger presets
// and the settings service select their defaults by it.
package environment
