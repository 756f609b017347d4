// Package cmd contains support code for the command-line utilities, such as reading pipeline
// configuration from disk.
package cmd
