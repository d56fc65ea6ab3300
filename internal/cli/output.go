package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// NewFormatter builds a formatter from the --json and --quiet flags, writing
// to the command's streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		JSON:   FlagBool(cmd, "json"),
		Quiet:  FlagBool(cmd, "quiet"),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
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
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Printf writes human-readable text. It is silent in JSON and quiet modes.
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Fprintf(f.out(), format, args...)
}

// Table renders rows as a human-readable table. It is silent in JSON and
// quiet modes.
func (f *OutputFormatter) Table(header []string, rows [][]string) {
	if f.JSON || f.Quiet {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(f.out())
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)
	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}
	t.Render()
}

// Fail reports err in the current output mode and wraps it with the exit
// code it maps to
func (f *OutputFormatter) Fail(code string, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		return fmt.Errorf("failed to format error %v: %w", err, fmtErr)
	}
	return &CodedError{Code: ExitCodeFor(err), Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	// Default implementation - can be enhanced per data type
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Notify prints board notifications to stderr in human mode
func (f *OutputFormatter) Notify(views []NotificationView) {
	if f.JSON || f.Quiet {
		return
	}
	for _, n := range views {
		icon := "ℹ"
		switch n.Level {
		case "warning":
			icon = "⚠"
		case "error":
			icon = "❌"
		}
		fmt.Fprintf(f.errOut(), "%s %s\n", icon, n.Message)
	}
}
