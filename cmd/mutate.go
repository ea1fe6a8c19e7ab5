package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"mutavec.dev/pkg/mutavec/internal/adapter"
	"mutavec.dev/pkg/mutavec/internal/controller"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

var mutateURLFlag string
var mutateKindFlag string
var mutateMethodFlag string
var mutateParamsFlag []string
var mutateImmutableFlag []string
var mutatePayloadFlag string
var mutatePayloadFileFlag string
var mutateFormatsFlag []string
var mutateParamFlipFlag bool
var mutateRespectMethodFlag string
var mutateThreadsFlag int
var mutateTUIFlag bool

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Generate payload mutations for an input vector",
		Long: `Generate the mutated input vectors for one target: the payload is injected
into every eligible parameter under each format combination, optionally with
the transmission method switched and a parameter-flip variant appended.

Parameters are given as repeated --param name=value flags; --payload-file
reads a YAML list of payloads and fans them out across workers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMutate(cmd)
		},
	}

	configureMutateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}

func configureMutateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&mutateURLFlag, "url", "u", "", "target URL (required)")
	cmd.Flags().StringVarP(&mutateKindFlag, "kind", "k", "query", "vector kind: query, form, cookie, or header")
	cmd.Flags().StringVarP(&mutateMethodFlag, "method", "m", "", "transmission method override (GET or POST)")
	cmd.Flags().StringArrayVarP(&mutateParamsFlag, "param", "P", nil, "parameter as name=value (can be repeated)")
	cmd.Flags().StringArrayVar(&mutateImmutableFlag, "immutable", nil, "parameter name never selected as a mutation target (can be repeated)")
	cmd.Flags().StringVarP(&mutatePayloadFlag, "payload", "p", "", "payload string to inject")
	cmd.Flags().StringVar(&mutatePayloadFileFlag, "payload-file", "", "YAML file holding a list of payloads")
	cmd.Flags().StringArrayVarP(&mutateFormatsFlag, "format", "f", nil, "format combination such as straight or append+null (can be repeated)")
	cmd.Flags().BoolVar(&mutateParamFlipFlag, "param-flip", false, "also emit the parameter-introducing flip mutation")
	cmd.Flags().StringVar(&mutateRespectMethodFlag, "respect-method", "auto", "keep the original method only: true, false, or auto (derive from config)")
	cmd.Flags().IntVarP(&mutateThreadsFlag, "threads", "t", viper.GetInt(fuzzThreadsKey), "parallel workers when fanning out multiple payloads")
	bindFlagToConfig(cmd.Flags().Lookup("threads"), fuzzThreadsKey)
	cmd.Flags().BoolVar(&mutateTUIFlag, "tui", false, "browse the results interactively")

	cobra.CheckErr(cmd.MarkFlagRequired("url"))
}

func runMutate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	vector, err := buildVector(mutateKindFlag, mutateURLFlag, mutateMethodFlag, mutateParamsFlag, mutateImmutableFlag)
	if err != nil {
		return err
	}

	opts, err := buildOptions(mutateFormatsFlag, mutateParamFlipFlag, mutateRespectMethodFlag)
	if err != nil {
		return err
	}

	payloads, err := loadPayloads(mutatePayloadFlag, mutatePayloadFileFlag)
	if err != nil {
		return err
	}

	mutations, err := generateAll(ctx, vector, payloads, opts, mutateThreadsFlag)
	if err != nil {
		return err
	}

	ui := controller.NewUI(cmd, mutateTUIFlag)
	if err := ui.DisplayMutations(ctx, mutations); err != nil {
		return err
	}

	ui.DisplaySummary(ctx, len(mutations), len(payloads))

	return nil
}

// generateAll materializes the mutation stream, fanning out across workers
// when more than one payload is given.
func generateAll(ctx context.Context, vector m.Vector, payloads []string, opts m.Options, threads int) ([]m.Vector, error) {
	if len(payloads) == 1 {
		return engine.Collect(ctx, vector, payloads[0], opts)
	}

	ch, errCh := engine.Stream(ctx, vector, payloads, opts, threads)

	var mutations []m.Vector
	for mutation := range ch {
		mutations = append(mutations, mutation)
	}

	if err := <-errCh; err != nil {
		return nil, err
	}

	return mutations, nil
}

func buildVector(kind, target, method string, paramFlags, immutables []string) (m.Vector, error) {
	params, err := parseParams(paramFlags)
	if err != nil {
		return nil, err
	}

	var vector m.Vector

	switch strings.ToLower(kind) {
	case "query":
		vector = adapter.NewQueryVector(target, params)
	case "form":
		vector = adapter.NewFormVector(target, params)
	case "cookie":
		vector = adapter.NewCookieVector(target, params)
	case "header":
		vector = adapter.NewHeaderVector(target, params)
	default:
		return nil, fmt.Errorf("unknown vector kind: %q", kind)
	}

	if method != "" {
		parsed, err := parseMethod(method)
		if err != nil {
			return nil, err
		}

		vector.SetMethod(parsed)
	}

	for _, name := range immutables {
		vector.Immutables().Add(name)
	}

	return vector, nil
}

func parseParams(paramFlags []string) (*m.Params, error) {
	params := m.NewParams()

	for _, entry := range paramFlags {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q: expected name=value", entry)
		}

		params.Set(name, value)
	}

	return params, nil
}

func parseMethod(method string) (m.Method, error) {
	switch strings.ToUpper(method) {
	case string(m.MethodGet):
		return m.MethodGet, nil
	case string(m.MethodPost):
		return m.MethodPost, nil
	}

	return "", fmt.Errorf("unknown method: %q", method)
}

func buildOptions(formatFlags []string, paramFlip bool, respectMethod string) (m.Options, error) {
	names := formatFlags
	if len(names) == 0 {
		names = viper.GetStringSlice(fuzzFormatsKey)
	}

	formats := make([]m.Format, 0, len(names))

	for _, name := range names {
		format, err := m.ParseFormat(name)
		if err != nil {
			return m.Options{}, err
		}

		formats = append(formats, format)
	}

	opts := m.Options{
		Formats:   formats,
		ParamFlip: paramFlip,
	}

	switch strings.ToLower(respectMethod) {
	case "auto", "":
		// Leave unset; the engine derives it from the audit policy.
	case "true":
		opts.RespectMethod = m.BoolPtr(true)
	case "false":
		opts.RespectMethod = m.BoolPtr(false)
	default:
		return m.Options{}, fmt.Errorf("invalid --respect-method %q: expected true, false, or auto", respectMethod)
	}

	return opts, nil
}

// loadPayloads merges the single --payload flag with the payload file, in
// that order. At least one payload is required.
func loadPayloads(payload, file string) ([]string, error) {
	var payloads []string

	if payload != "" {
		payloads = append(payloads, payload)
	}

	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}

		var fromFile []string
		if err := yaml.Unmarshal(content, &fromFile); err != nil {
			return nil, fmt.Errorf("failed to parse payload file %s: %w", file, err)
		}

		payloads = append(payloads, fromFile...)
	}

	if len(payloads) == 0 {
		return nil, fmt.Errorf("no payload given: use --payload or --payload-file")
	}

	return payloads, nil
}
