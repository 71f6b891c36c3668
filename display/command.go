package display

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/camilacod/DataVizVastProject/errors"
)

// JSONEnvVar forces JSON output when set to a true value
const JSONEnvVar = "MC1EDA_JSON"

// ShouldOutputJSON determines if a command should output JSON based on flags and environment
func ShouldOutputJSON(cmd *cobra.Command) bool {
	// Without a command context only the environment decides
	if cmd == nil {
		return jsonFromEnv()
	}

	// Check if --json flag was explicitly set
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return jsonFromEnv()
}

func jsonFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(JSONEnvVar))
	return err == nil && v
}

// OutputJSON marshals and prints JSON to stdout using display.MarshalJSON
func OutputJSON(v interface{}) error {
	return FprintJSON(os.Stdout, v)
}

// FprintJSON marshals v and writes it to w followed by a newline
func FprintJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
