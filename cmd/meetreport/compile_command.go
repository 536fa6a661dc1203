package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"meetreport/internal/export"
	"meetreport/internal/logging"
	"meetreport/internal/report"
	"meetreport/internal/services"
)

type compileFlags struct {
	outDir      string
	name        string
	format      string
	inputFormat string
	noDialogue  bool
	timestamps  bool
	noFold      bool
	stdout      bool
	jsonOutput  bool
}

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "compile <result.json|->",
		Short: "Compile an analysis result into a report artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			started := time.Now()
			runCtx, _ := services.EnsureRequestID(cmd.Context())
			runCtx = services.WithStage(services.WithSource(runCtx, args[0]), "compile")
			logger = logging.WithContext(runCtx, logger)

			res, err := loadInput(cmd, args[0], flags.inputFormat)
			if err != nil {
				return err
			}

			opts := report.OptionsFromConfig(cfg, logger)
			if flags.noDialogue {
				opts.IncludeDialogue = false
			}
			if flags.timestamps {
				opts.ShowTimestamps = true
			}
			if flags.noFold {
				opts.FoldASCII = false
			}

			format := cfg.Report.Format
			if strings.TrimSpace(flags.format) != "" {
				format = flags.format
			}
			sink, err := export.SinkFor(format)
			if err != nil {
				return services.Wrap(services.ErrValidation, "compile", "format", "", err)
			}

			doc, err := report.Compile(res, opts)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "compile", "layout", "", err)
			}

			if flags.stdout {
				if err := sink.Export(runCtx, doc, cmd.OutOrStdout()); err != nil {
					return services.Wrap(services.ErrTransient, "compile", "export", "stdout", err)
				}
				return nil
			}

			dir := cfg.Report.OutputDir
			if strings.TrimSpace(flags.outDir) != "" {
				dir = flags.outDir
			}
			name := cfg.Report.OutputName
			if strings.TrimSpace(flags.name) != "" {
				name = flags.name
			}
			delivery, err := export.WriteFile(runCtx, dir, name, sink, doc)
			if err != nil {
				return err
			}
			logger.Info("report written",
				logging.String("path", delivery.Path),
				logging.Duration("elapsed", time.Since(started)),
			)

			if flags.jsonOutput {
				return writeJSON(cmd, struct {
					export.Delivery
					Pages int `json:"pages"`
				}{delivery, len(doc.Pages)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %d bytes)\n",
				delivery.Path, plural(len(doc.Pages), "page", "pages"), delivery.Bytes)
			fmt.Fprintf(cmd.OutOrStdout(), "sha256 %s\n", delivery.SHA256)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Artifact base name (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Export format: json or text (default from config)")
	cmd.Flags().StringVar(&flags.inputFormat, "input-format", "", "Input encoding: json or yaml (default from extension)")
	cmd.Flags().BoolVar(&flags.noDialogue, "no-dialogue", false, "Omit the dialogue section")
	cmd.Flags().BoolVar(&flags.timestamps, "timestamps", false, "Print time captions under dialogue blocks")
	cmd.Flags().BoolVar(&flags.noFold, "no-fold", false, "Keep diacritics in printed text")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "Write the artifact to stdout instead of a file")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Report the written artifact as JSON")
	return cmd
}
