package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/oakwire/gqlexec/internal/eventbus"
	"github.com/oakwire/gqlexec/internal/executor"
	language "github.com/oakwire/gqlexec/internal/language"
	"github.com/oakwire/gqlexec/internal/otel"
	"github.com/oakwire/gqlexec/internal/starwars"
)

const rootUsage = `gqlexec — run a single GraphQL operation against the bundled example schema

USAGE:
  gqlexec run FLAGS
  gqlexec help

RUN FLAGS:
  -query <string>       GraphQL document (required unless -query.file is set)
  -query.file <path>    Read the GraphQL document from a file, "-" for stdin
  -operation <name>     Operation name to run (default: the document's sole operation)
  -variables <json>     JSON object of variable bindings (default: {})
  -pretty                Indent the JSON result
  -otel.endpoint <addr>  OTLP collector endpoint (default: tracing disabled)
  -otel.service <name>   OpenTelemetry service name (default: gqlexec)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "run":
		return cmdRun(args[1:])
	case "help":
		fmt.Print(rootUsage)
		return nil
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdRun(args []string) error {
	var (
		query        string
		queryFile    string
		operation    string
		variablesRaw string
		pretty       bool
		otelEndpoint string
		otelService  = "gqlexec"
	)

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&query, "query", "", "GraphQL document")
	fs.StringVar(&queryFile, "query.file", "", `Read the GraphQL document from a file, "-" for stdin`)
	fs.StringVar(&operation, "operation", "", "Operation name to run")
	fs.StringVar(&variablesRaw, "variables", "{}", "JSON object of variable bindings")
	fs.BoolVar(&pretty, "pretty", false, "Indent the JSON result")
	fs.StringVar(&otelEndpoint, "otel.endpoint", "", "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}

	if queryFile != "" {
		src, err := readQueryFile(queryFile)
		if err != nil {
			return err
		}
		query = src
	}
	if query == "" {
		return fmt.Errorf("one of -query or -query.file is required")
	}

	var variables map[string]any
	if err := json.Unmarshal([]byte(variablesRaw), &variables); err != nil {
		return fmt.Errorf("-variables: invalid JSON: %w", err)
	}

	document, err := language.ParseQuery(query)
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	req := executor.NewRequest(starwars.NewTypeMap())
	result := req.Resolve(context.Background(), document, operation, variables)

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func readQueryFile(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
