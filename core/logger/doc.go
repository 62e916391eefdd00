// Package logger builds the diagnostic logger and the structured fields
// used to describe searches.
package logger
