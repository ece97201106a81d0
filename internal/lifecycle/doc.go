// Package lifecycle ties asynchronous work to the lifetime of its owner,
// typically a screen. Leaving the screen calls [Scope.CancelAll], after which
// no spawned unit resumes into the screen.
package lifecycle
