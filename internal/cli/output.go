package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd and writes to the
// command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly output flags on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Writer returns the stream for human-readable output
func (f *OutputFormatter) Writer() io.Writer {
	return f.stdout()
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.stdout(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// ID prints a bare identifier, used by quiet mode
func (f *OutputFormatter) ID(id string) {
	fmt.Fprintln(f.stdout(), id)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.stderr(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns an *ExitError with the matching exit code
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	code, exit := Classify(err)
	return f.FailWith(code, exit, err, suggestion)
}

// FailWith reports err under an explicit error code and exit code
func (f *OutputFormatter) FailWith(code string, exit int, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		fmt.Fprintf(f.stderr(), "Error formatting error message: %v\n", fmtErr)
	}
	return &ExitError{Code: exit, Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(f.stdout(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}
