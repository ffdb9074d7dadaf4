// Command logicpaper exercises the formatting core from the shell: run one
// value through a directive, list the variables a template requires, or
// validate templates against available data columns.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rubensbraz/logicpaper/pkg/logicpaper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "logicpaper",
		Short:         "Formatting pipeline and template validator for tabular document generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFormatCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("logicpaper version %s\n", version)
		},
	})

	return root
}

func newFormatCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "format <value> <directive>",
		Short: "Run one value through a formatting directive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if locale == "" {
				locale = logicpaper.GetGlobalConfig().Locale
			}
			reg := logicpaper.NewStrategyRegistry(logicpaper.NewLocaleProvider(locale))
			res := reg.Format(args[0], logicpaper.ParseDirective(args[1]))

			fmt.Println(res.Text())
			for _, w := range res.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "locale for number and date formatting")
	return cmd
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <template>...",
		Short: "List the variables each template requires",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				vars, err := logicpaper.ExtractTemplateVars(path)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(vars))
				for v := range vars {
					names = append(names, v)
				}
				sort.Strings(names)
				fmt.Printf("%s: %s\n", filepath.Base(path), strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var columns []string
	var csvPath string

	cmd := &cobra.Command{
		Use:   "validate <template>...",
		Short: "Check templates against available data columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath != "" {
				header, err := readCSVHeader(csvPath)
				if err != nil {
					return err
				}
				columns = append(columns, header...)
			}
			if len(columns) == 0 {
				return fmt.Errorf("no columns given: use --columns or --csv")
			}

			templates := make(map[string]string, len(args))
			for _, path := range args {
				templates[filepath.Base(path)] = path
			}

			report := logicpaper.Compare(columns, templates)
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if !report.OverallValid {
				os.Exit(2)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "available column names")
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file whose header row supplies the column names")
	return cmd
}

func readCSVHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	return header, nil
}
