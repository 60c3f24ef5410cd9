// Package query provides the one-shot lookup commands. Each command
// invokes one named operation through the same registry the server uses,
// so argument validation and responses are identical.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/lnmap/internal/appcontext"
	"github.com/agentstation/lnmap/internal/cmd/output"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
)

// NewCommands returns every query command bound to app.
func NewCommands(app appcontext.Interface) []*cobra.Command {
	return []*cobra.Command{
		NewNodeCommand(app),
		NewTopCommand(app),
		NewRankCommand(app),
		NewRatedCommand(app),
		NewSwapsCommand(app),
		NewPathCommand(app),
		NewCompareCommand(app),
		NewSearchCommand(app),
		NewIntrospectCommand(app),
	}
}

// args collects the arguments of one operation call.
type args map[string]any

// fromFlags copies the flags the user set into a under their argument
// names. Unset flags are left to the operation's defaults.
func (a args) fromFlags(cmd *cobra.Command, names map[string]string) error {
	for flag, key := range names {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		var (
			v   any
			err error
		)
		switch f.Value.Type() {
		case "int":
			v, err = cmd.Flags().GetInt(flag)
		case "int64":
			v, err = cmd.Flags().GetInt64(flag)
		case "float64":
			v, err = cmd.Flags().GetFloat64(flag)
		default:
			v = f.Value.String()
		}
		if err != nil {
			return err
		}
		a[key] = v
	}
	return nil
}

// call runs the named operation with a and writes the result to the
// command's output in the configured format.
func call(cmd *cobra.Command, app appcontext.Interface, name string, a args) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	format = output.DetectFormat(string(format))

	registry, err := app.Tools()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(a)
	if err != nil {
		return errors.WrapParse("json", name, err)
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	res, err := registry.Call(ctx, name, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	return output.Result(cmd.OutOrStdout(), format, res)
}
