// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/oneof/config"
	"github.com/z5labs/oneof/config/configtmpl"
	"github.com/z5labs/oneof/config/key"
	"github.com/z5labs/oneof/internal/gen"
	"github.com/z5labs/oneof/internal/try"
	"github.com/z5labs/oneof/pkg/otelconfig"
	"github.com/z5labs/oneof/pkg/otelslog"
	"github.com/z5labs/oneof/pkg/slogfield"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
)

const defaultConfigPath = "oneofgen.yaml"

// flagKeys maps command line flags onto the dotted config key paths they override.
var flagKeys = map[string]string{
	"package":   "package",
	"max-arity": "maxArity",
	"output":    "output",
}

func buildCmd(stderr io.Writer) *cobra.Command {
	var (
		cfgPath string
		trace   bool
	)

	cmd := &cobra.Command{
		Use:           "oneofgen",
		Short:         "Render the fixed arity oneof containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			handler := slog.NewJSONHandler(stderr, &slog.HandlerOptions{})
			log := otelslog.New(handler)

			cfg, err := readConfig(cfgPath, cmd.Flags().Changed("config"), cmd.Flags())
			if err != nil {
				log.ErrorContext(cmd.Context(), "failed to read config", slogfield.Error(err))
				return err
			}

			if trace {
				tp, err := otelconfig.Local(otelconfig.ServiceName("oneofgen"), otelconfig.Out(stderr)).Init()
				if err != nil {
					log.ErrorContext(cmd.Context(), "failed to initialize tracing", slogfield.Error(err))
					return err
				}
				otel.SetTracerProvider(tp)
				defer func() {
					// a cancelled command context must not drop buffered spans
					serr := tp.Shutdown(context.WithoutCancel(cmd.Context()))
					if serr != nil {
						log.ErrorContext(cmd.Context(), "failed to shutdown tracing", slogfield.Error(serr))
					}
				}()
			}

			err = gen.Generate(
				cmd.Context(),
				cfg,
				gen.DirWriter(cfg.Output),
				gen.LogHandler(handler),
			)
			if err != nil {
				log.ErrorContext(cmd.Context(), "failed to generate containers", slogfield.Error(err))
				return err
			}
			return nil
		},
	}

	def := gen.DefaultConfig()
	cmd.Flags().StringVar(&cfgPath, "config", defaultConfigPath, "YAML or JSON config file")
	cmd.Flags().String("package", def.Package, "package name of the generated files")
	cmd.Flags().Int("max-arity", def.MaxArity, "widest container to generate")
	cmd.Flags().String("output", def.Output, "directory to write generated files to")
	cmd.Flags().BoolVar(&trace, "trace", false, "write OpenTelemetry spans to stderr")

	return cmd
}

// readConfig layers the defaults, the config file and any flag set
// on the command line, in that order.
func readConfig(path string, required bool, flags *pflag.FlagSet) (gen.Config, error) {
	def := gen.DefaultConfig()
	defaults := config.Map{
		"package":  def.Package,
		"maxArity": def.MaxArity,
		"output":   def.Output,
	}

	var fileOpts []config.FileReaderOption
	if !required {
		fileOpts = append(fileOpts, config.AllowMissing())
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return gen.Config{}, err
	}
	f := config.NewFileReader(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), fileOpts...)
	defer f.Close()

	file := config.Decode(
		config.RenderTemplate(f, configtmpl.Options()...),
		config.FormatOf(path),
	)

	overrides, err := changedFlags(flags, flagKeys)
	if err != nil {
		return gen.Config{}, err
	}

	m, err := config.Read(defaults, file, overrides)
	if err != nil {
		return gen.Config{}, err
	}

	var cfg gen.Config
	err = m.Unmarshal(&cfg)
	if err != nil {
		return gen.Config{}, err
	}
	return cfg, nil
}

// changedFlags collects the flags set on the command line which keys
// maps onto a config key path. Other flags are skipped.
func changedFlags(flags *pflag.FlagSet, keys map[string]string) (config.Map, error) {
	m := make(config.Map)
	var err error
	flags.Visit(func(f *pflag.Flag) {
		path, ok := keys[f.Name]
		if !ok || err != nil {
			return
		}

		var v any
		switch f.Value.Type() {
		case "int":
			v, err = flags.GetInt(f.Name)
		default:
			v = f.Value.String()
		}
		if err != nil {
			return
		}
		err = m.Set(key.Parse(path), v)
	})
	return m, err
}
