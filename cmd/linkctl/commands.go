package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var url, code string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a short link",
		Example: `  linkctl create --url https://example.com
  linkctl create --url https://example.com --code abc123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.open()
			if err != nil {
				return err
			}
			defer api.Close()

			link, err := api.Create(cmd.Context(), url, code)
			if err != nil {
				return fmt.Errorf("create link: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Code: %s\nShort URL: %s/%s\n", link.Code, a.config().URL, link.Code)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "the long URL to shorten")
	cmd.Flags().StringVar(&code, "code", "", "custom code, 6 to 8 letters or digits")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active links, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.open()
			if err != nil {
				return err
			}
			defer api.Close()

			links, err := api.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tCLICKS\tCREATED\tLAST CLICKED\tURL")
			for _, l := range links {
				lastClicked := "-"
				if l.LastClicked != nil {
					lastClicked = l.LastClicked.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", l.Code, l.Clicks, l.CreatedAt.Format(time.RFC3339), lastClicked, l.URL)
			}
			return w.Flush()
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Show one link as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.open()
			if err != nil {
				return err
			}
			defer api.Close()

			link, err := api.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get %s: %w", args[0], err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(link)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a link; its code becomes free again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.open()
			if err != nil {
				return err
			}
			defer api.Close()

			if err := api.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the whole stored state, deleted links and ids included",
		Long:  `dump prints the stored state as JSON in the link file format. The output can be saved as a link file to move the data between backends.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.remote != "" {
				return errors.New("dump reads the storage directly and cannot be used with --remote")
			}
			api, err := a.openLocal()
			if err != nil {
				return err
			}
			defer api.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(api.links.Snapshot())
		},
	}
}
