// Package animals holds build metadata for the animals CLI.
package animals

// Version is the semantic version reported by the CLI.
const Version = "0.1.0"
