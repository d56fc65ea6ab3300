package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/query"
)

// Global flag names
const (
	FlagView    = "view"
	FlagGroupBy = "group-by"
	FlagSort    = "sort"
	FlagJSON    = "json"
	FlagQuiet   = "quiet"
	FlagConfig  = "config"
)

// DefaultGroupBy is the property boards group by when --group-by is not given
const DefaultGroupBy = "note.status"

// AddGlobalFlags registers the flags every command understands
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(FlagView, "", "View whose column order is used (default from config)")
	flags.String(FlagGroupBy, DefaultGroupBy, "Property the board is grouped by")
	flags.StringArray(FlagSort, nil, "Sort as property[:asc|desc]; repeatable")

	// Agent-friendly flags
	flags.Bool(FlagJSON, false, "Output in JSON format")
	flags.Bool(FlagQuiet, false, "Minimal output")

	flags.String(FlagConfig, "", "Config file (default $XDG_CONFIG_HOME/paso-board/config.yaml)")
}

// FlagBool reads a boolean flag, false when undefined
func FlagBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}

// FlagString reads a string flag, empty when undefined
func FlagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// QueryFromFlags builds the board query from --group-by and --sort
func QueryFromFlags(cmd *cobra.Command) (query.Query, error) {
	q := query.Query{GroupBy: FlagString(cmd, FlagGroupBy)}
	if q.GroupBy == "" {
		q.GroupBy = DefaultGroupBy
	}

	sorts, err := cmd.Flags().GetStringArray(FlagSort)
	if err != nil {
		return q, nil
	}
	for _, s := range sorts {
		spec, err := models.ParseSortSpec(s)
		if err != nil {
			return query.Query{}, fmt.Errorf("invalid --sort: %w", err)
		}
		spec.Property = query.Property(spec.Property)
		q.Sort = append(q.Sort, spec)
	}
	return q, nil
}
