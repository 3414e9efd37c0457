// Package api contains interfaces that are used throughout the confres code base
package api

// Home is an option key that can be used to override the home directory that the locator
// consults during the user-home search step. The default is the home directory of the
// current process owner.
const Home = `Confres::Home`
