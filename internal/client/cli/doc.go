// Package cli implements the interactive filehost terminal client.
//
// The REPL reads one command per line. Before signing in only signup,
// signin, metrics, help and exit are useful; the file commands need a
// session token and report an error without one.
package cli
