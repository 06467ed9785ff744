// Package report prints generated secrets for the deployment workflow.
//
// A report lists every entry (name, description, value), the next steps for
// the VibSDK deployment, a .env block of NAME="VALUE" lines in entry order,
// and a security reminder. Values are printed verbatim. With colour
// disabled the output contains no ANSI escapes, so the .env block can be
// copied or parsed as-is.
package report
