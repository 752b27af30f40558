// ABOUTME: Command line entry point for CNPJ and CEP lookups
// ABOUTME: Wires configuration, logging and the hubdev client, then prints JSON results

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hubdev-client/hubdev"
	loggerInfra "hubdev-client/infrastructure/logger/logrus"
	"hubdev-client/pkg/config"
)

// paramList collects repeated -param name=value flags
type paramList []hubdev.QueryParam

func (p *paramList) String() string {
	parts := make([]string, 0, len(*p))
	for _, param := range *p {
		parts = append(parts, param.Name+"="+param.Value)
	}
	return strings.Join(parts, ",")
}

func (p *paramList) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	*p = append(*p, hubdev.Param(name, val))
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hubdev", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var params paramList
	debug := flags.Bool("debug", true, "attach transport diagnostics to the output")
	envFile := flags.String("env", ".env", "dotenv file to load before reading the environment")
	transport := flags.String("transport", "", "HTTP transport (resty or standard)")
	flags.Var(&params, "param", "extra query parameter as name=value (repeatable)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: hubdev [flags] cnpj|cep <value>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *transport != "" {
		cfg.Client.Transport = strings.ToLower(*transport)
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "debug" {
			cfg.Client.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, err := loggerInfra.NewLogger(cfg.Log.Level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}

	client, err := hubdev.NewClient(
		hubdev.WithToken(cfg.Client.Token),
		hubdev.WithDebug(cfg.Client.Debug),
		hubdev.WithBaseURL(cfg.Client.BaseURL),
		hubdev.WithTimeout(time.Duration(cfg.Client.TimeoutSeconds)*time.Second),
		hubdev.WithTransport(hubdev.TransportType(cfg.Client.Transport)),
		hubdev.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create client: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kind, value := strings.ToLower(flags.Arg(0)), flags.Arg(1)

	var lookup *hubdev.Lookup
	switch kind {
	case "cnpj":
		lookup, err = client.LookupCNPJ(ctx, value, params...)
	case "cep":
		lookup, err = client.LookupCEP(ctx, value, params...)
	default:
		fmt.Fprintf(stderr, "unknown lookup %q, expected cnpj or cep\n", kind)
		return 2
	}
	if err != nil {
		logger.Debug("Lookup failed", map[string]interface{}{
			"lookup": kind,
			"value":  value,
		})
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printDiagnostics(stderr, err)
		return 1
	}

	out := map[string]interface{}{"result": lookup.Result}
	if lookup.Envelope != nil && lookup.Envelope.Debug != nil {
		out["debug"] = lookup.Envelope.Debug
	}
	return printJSON(stdout, stderr, out)
}

// printDiagnostics writes the diagnostics carried by upstream errors, if any
func printDiagnostics(w io.Writer, err error) {
	var diagnostics *hubdev.Diagnostics

	var upstreamErr *hubdev.UpstreamError
	var unknownErr *hubdev.UnknownUpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		diagnostics = upstreamErr.Diagnostics
	case errors.As(err, &unknownErr):
		diagnostics = unknownErr.Diagnostics
	}
	if diagnostics == nil {
		return
	}

	data, marshalErr := json.MarshalIndent(diagnostics, "", "  ")
	if marshalErr != nil {
		return
	}
	fmt.Fprintf(w, "%s\n", data)
}

func printJSON(stdout, stderr io.Writer, v interface{}) int {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(stderr, "Failed to encode result: %v\n", err)
		return 1
	}
	return 0
}
