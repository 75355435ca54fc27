package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/postgres"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lcpctl",
		Short:         "Operator tooling for LC presentation ledger events",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(statusesCmd())
	root.AddCommand(topicsCmd())
	root.AddCommand(decodeCmd())
	root.AddCommand(encodeCmd())
	root.AddCommand(companiesCmd())
	return root
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	return tw
}

func statusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "Print the contract status translation table",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Status", "Phrase", "Digest"})
			for _, tok := range ledger.StatusTokens() {
				tw.AppendRow(table.Row{tok.Status, tok.Phrase, tok.Digest})
			}
			tw.Render()
			return nil
		},
	}
}

func topicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "Print the event topic index across schema versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := ledger.NewDefaultRegistry()
			if err != nil {
				return err
			}
			idx := registry.Index()
			keys := make([]string, 0, len(idx))
			for k := range idx {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Topic", "Event", "Version", "Anonymous"})
			for _, k := range keys {
				for _, s := range idx[k].Schemas {
					tw.AppendRow(table.Row{k, s.Entry.Name, s.Version.Number, s.Entry.Anonymous})
				}
			}
			tw.Render()
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a ledger log read from a JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			var log ledger.Log
			if err := json.NewDecoder(in).Decode(&log); err != nil {
				return fmt.Errorf("invalid log: %w", err)
			}
			registry, err := ledger.NewDefaultRegistry()
			if err != nil {
				return err
			}
			decoded := registry.Decode(cmd.Context(), &log)
			if !decoded.OK() {
				return fmt.Errorf("no schema matches log topic")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (version %d, anonymous=%t)\n", decoded.Name, decoded.Version, decoded.Anonymous)
			names := make([]string, 0, len(decoded.Fields))
			for k := range decoded.Fields {
				names = append(names, k)
			}
			sort.Strings(names)
			tw := newTable(out)
			tw.AppendHeader(table.Row{"Field", "Value"})
			for _, k := range names {
				tw.AppendRow(table.Row{k, decoded.Fields[k]})
			}
			tw.Render()
			return nil
		},
	}
}

func encodeCmd() *cobra.Command {
	var (
		version int
		event   string
		fields  string
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a synthetic ledger log for an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := map[string]interface{}{}
			if strings.TrimSpace(fields) != "" {
				if err := json.Unmarshal([]byte(fields), &values); err != nil {
					return fmt.Errorf("invalid --fields: %w", err)
				}
			}
			registry, err := ledger.NewDefaultRegistry()
			if err != nil {
				return err
			}
			log, err := registry.Encode(cmd.Context(), version, event, values)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(log)
		},
	}
	cmd.Flags().IntVar(&version, "version", 1, "schema version")
	cmd.Flags().StringVar(&event, "event", "", "event name")
	cmd.Flags().StringVar(&fields, "fields", "", "event fields as a JSON object")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func companiesCmd() *cobra.Command {
	v := viper.New()
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage the company registry",
	}
	cmd.PersistentFlags().String("database-url", "", "postgres DSN (env DATABASE_URL)")
	_ = v.BindPFlag("DATABASE_URL", cmd.PersistentFlags().Lookup("database-url"))

	withRegistry := func(ctx context.Context, fn func(*postgres.CompanyRegistry) error) error {
		dsn := v.GetString("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
		pool, err := postgres.NewPool(ctx, dsn)
		if err != nil {
			return err
		}
		defer pool.Close()
		return fn(postgres.NewCompanyRegistry(pool))
	}

	var name, node string
	register := &cobra.Command{
		Use:   "register <static-id>",
		Short: "Register a company and its ledger node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &company.Company{StaticID: args[0], DisplayName: name, Node: node}
			return withRegistry(cmd.Context(), func(r *postgres.CompanyRegistry) error {
				if err := r.Register(cmd.Context(), c); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "registered %s at node %s\n", c.StaticID, company.NodeHash(c.StaticID))
				return nil
			})
		},
	}
	register.Flags().StringVar(&name, "name", "", "display name")
	register.Flags().StringVar(&node, "node", "", "ledger node hash (defaults to the static id namehash)")

	resolve := &cobra.Command{
		Use:   "resolve <node>",
		Short: "Resolve a ledger node hash to a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRegistry(cmd.Context(), func(r *postgres.CompanyRegistry) error {
				id, err := r.ResolveStaticID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if id == "" {
					return fmt.Errorf("no company registered for node %s", args[0])
				}
				display, err := r.GetDisplayName(cmd.Context(), id)
				if err != nil {
					return err
				}
				tw := newTable(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"Static ID", "Name", "Node"})
				tw.AppendRow(table.Row{id, display, company.NormalizeNode(args[0])})
				tw.Render()
				return nil
			})
		},
	}

	nodeCmd := &cobra.Command{
		Use:   "node <static-id>",
		Short: "Print the ledger node hash of a company static id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), company.NodeHash(args[0]))
			return nil
		},
	}

	cmd.AddCommand(register, resolve, nodeCmd)
	return cmd
}
