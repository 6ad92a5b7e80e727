// Package options reads and writes named option values.
//
// Manager.Update runs the value through the persist filter chain for the
// option (hooks.PersistHook(name)) before storing it, which is where the
// sanitization registry plugs in. A write whose filtered value equals the
// stored one is skipped and reported as not updated.
package options
