// Package mcp exposes the aggregation operations as Model Context
// Protocol tools, mirroring the command surface for AI assistants.
package mcp

import "errors"

// ErrMissingAnalysis is returned when the analysis service is not provided.
var ErrMissingAnalysis = errors.New("mcp: analysis service is required")

// ErrMissingProbe is returned when the source probe is not provided.
var ErrMissingProbe = errors.New("mcp: source probe is required")
