package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/clientdesk/internal/client/config"
	"github.com/dmitrijs2005/clientdesk/internal/client/form"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

// fieldFlags maps form fields to the flag names of create and update.
var fieldFlags = []struct {
	field form.Field
	name  string
	usage string
}{
	{form.FieldName, "name", "customer name"},
	{form.FieldEmail, "email", "customer email"},
	{form.FieldPhone, "phone", "phone number, non-digits are dropped"},
	{form.FieldBirthDate, "birth-date", "birth date as YYYY-MM-DD"},
}

// NewRootCmd builds the command tree. Without a subcommand the interactive
// shell starts.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		flags config.Flags
		app   *App
	)
	appFn := func() *App { return app }

	root := &cobra.Command{
		Use:   "clientdesk",
		Short: "Customer desk client",
		Long: `clientdesk manages the customers of a remote customer API.

Run without arguments for the interactive shell, or use one of the
subcommands for a single operation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(&flags)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			app, err = NewApp(cfg, in, out, errOut)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Run(cmd.Context())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "config file path (YAML or JSON)")
	pf.StringVar(&flags.APIURL, "api-url", "", "base URL of the customer API")
	pf.DurationVar(&flags.RequestTimeout, "timeout", 0, "timeout of one API request")
	pf.DurationVar(&flags.ToastDuration, "toast-duration", 0, "how long notifications stay active")
	pf.StringVar(&flags.DisplayTimezone, "timezone", "", "IANA zone used to display timestamps")
	pf.StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error")

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newListCmd(appFn))
	root.AddCommand(newCreateCmd(appFn))
	root.AddCommand(newUpdateCmd(appFn))
	root.AddCommand(newDeleteCmd(appFn))
	root.AddCommand(newVersionCmd())

	return root
}

func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newListCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List customers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Reload(cmd.Context())
		},
	}
}

func newCreateCmd(app func() *App) *cobra.Command {
	values := make(map[form.Field]*string, len(fieldFlags))
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := make(map[form.Field]string)
			for f, v := range values {
				draft[f] = *v
			}
			return app().CreateOnce(cmd.Context(), draft)
		},
	}
	for _, ff := range fieldFlags {
		values[ff.field] = cmd.Flags().String(ff.name, "", ff.usage)
	}
	return cmd
}

func newUpdateCmd(app func() *App) *cobra.Command {
	values := make(map[form.Field]*string, len(fieldFlags))
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a customer; fields without a flag keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := make(map[form.Field]string)
			for _, ff := range fieldFlags {
				if cmd.Flags().Changed(ff.name) {
					changes[ff.field] = *values[ff.field]
				}
			}
			return app().UpdateOnce(cmd.Context(), args[0], changes)
		},
	}
	for _, ff := range fieldFlags {
		values[ff.field] = cmd.Flags().String(ff.name, "", ff.usage)
	}
	return cmd
}

func newDeleteCmd(app func() *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().DeleteOnce(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clientdesk %s\n", version)
		},
	}
}
