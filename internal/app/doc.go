// Package app wires the board database, the target attribute resolver
// and the logger into one application object and executes the command
// selected on the command line.
package app
