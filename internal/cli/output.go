package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// printJSON writes v as indented JSON without HTML escaping, so Japanese
// text and document URLs stay readable.
func printJSON(cmd *cobra.Command, v any) error {
	return encodeJSON(cmd.OutOrStdout(), v)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
