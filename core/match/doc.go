// Package match holds the line selection engine: compiling the pattern,
// settling conflicting options, deciding what each line prints and
// enforcing the output limit across sources.
package match
