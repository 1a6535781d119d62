// Package ui provides theme and color support for the tool's terminal output.
// It defines color schemes and provides ANSI escape code functions for
// consistent styling across the CLI presentation layer.
package ui
