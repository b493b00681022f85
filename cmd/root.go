// Package cmd implements the nestx CLI: path lookup, masking, redaction, key
// search, and normalization over JSON/YAML/TOML/NDJSON/JWT input.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/nestx/pkg/loader"
	"github.com/oakwood-commons/nestx/pkg/logger"
	"github.com/oakwood-commons/nestx/pkg/nest"
	"github.com/oakwood-commons/nestx/pkg/settings"
)

var (
	inputFile    string
	outputFormat string
	logLevel     int8

	defaultValue string
	allowKeys    []string
	maskKeys     []string
)

var rootCmd = &cobra.Command{
	Use:          settings.CliBinaryName,
	Short:        "nestx inspects and transforms nested structured data",
	Long:         "nestx reads JSON, YAML, TOML, NDJSON, or JWT input and runs path lookups, PII masking, redaction, key search, and type normalization over it.",
	Version:      settings.VersionInformation.BuildVersion,
	SilenceUsage: true,
}

func init() {
	params := settings.NewCliParams()
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "input file (defaults to stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().Int8Var(&logLevel, "log-level", params.MinLogLevel, "minimum zap log level (-1 debug, 0 info, 1 warn)")

	getCmd.Flags().StringVar(&defaultValue, "default", "", "value returned when the path does not resolve")
	redactCmd.Flags().StringSliceVar(&allowKeys, "allow", nil, "keys whose values stay visible")
	maskCmd.Flags().StringSliceVar(&maskKeys, "keys", nil, "key names to mask (defaults to the stock PII set)")

	rootCmd.AddCommand(getCmd, maskCmd, redactCmd, findCmd, primitiveCmd, queryCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Resolve a path against the input document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadInput()
		if err != nil {
			return err
		}
		var def any
		if defaultValue != "" {
			def = parseDefault(defaultValue)
		}
		result := nest.GetDefault(root, args[0], def)
		return emit(cmd.OutOrStdout(), result)
	},
}

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Mask PII values anywhere in the input document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadInput()
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), nest.MaskValues(root, maskKeys...))
	},
}

var redactCmd = &cobra.Command{
	Use:   "redact",
	Short: "Redact top-level values outside the allow-list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadInput()
		if err != nil {
			return err
		}
		data, ok := root.(map[string]any)
		if !ok {
			return fmt.Errorf("redact expects a top-level mapping, got %T", root)
		}
		return emit(cmd.OutOrStdout(), nest.Whitelist(data, allowKeys, true))
	},
}

var findCmd = &cobra.Command{
	Use:   "find <key>",
	Short: "Count occurrences of a key anywhere in the input document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadInput()
		if err != nil {
			return err
		}
		count := 0
		for range nest.FindKey(root, args[0]) {
			count++
		}
		fmt.Fprintln(cmd.OutOrStdout(), count)
		if count == 0 {
			return errNotFound
		}
		return nil
	},
}

var primitiveCmd = &cobra.Command{
	Use:   "primitive",
	Short: "Validate and normalize the input to primitive kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadInput()
		if err != nil {
			return err
		}
		normalized, err := nest.Primitive(root)
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), normalized)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <expr>",
	Short: "Evaluate a CEL expression against the input document",
	Long:  "Evaluate a CEL expression; the document is bound to the variable \"_\", e.g. '_.items.filter(x, x.available)'.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadInput()
		if err != nil {
			return err
		}
		engine, err := nest.New()
		if err != nil {
			return err
		}
		result, err := engine.Query(args[0], root)
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), result)
	},
}

// errNotFound makes `nestx find` exit non-zero when the key is absent while
// keeping the count on stdout.
var errNotFound = errors.New("key not found")

// loadInput reads the document from --file or stdin and parses it.
func loadInput() (any, error) {
	log := logger.Get(logLevel)
	if inputFile != "" {
		log.V(1).Info("loading input", "file", inputFile)
		return loader.LoadFile(inputFile)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("no input provided; pass --file or pipe a document to stdin")
	}
	log.V(1).Info("loading input", "source", "stdin", "bytes", len(data))
	return loader.LoadRootBytes(data)
}

// parseDefault lets --default carry structured values: anything that decodes
// as a document is used decoded, otherwise the raw string stands.
func parseDefault(raw string) any {
	if decoded, ok := loader.TryDecode(raw); ok {
		return decoded
	}
	return raw
}

// emit writes the result in the selected output format.
func emit(w io.Writer, v any) error {
	switch strings.ToLower(outputFormat) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
