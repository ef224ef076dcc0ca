package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sintese/internal/config"
	"sintese/internal/domain"
	"sintese/internal/loader"
	"sintese/internal/provider"
	"sintese/internal/service"

	// Register every backend with the provider factory.
	_ "sintese/internal/provider/anthropic"
	_ "sintese/internal/provider/gemini"
	_ "sintese/internal/provider/ollama"
	_ "sintese/internal/provider/openai"
	_ "sintese/internal/provider/xai"
)

func newSynthesizeCmd() *cobra.Command {
	var (
		configFile string
		writeXLSX  bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "synthesize <pasta> [modo]",
		Short: "Processa os PDFs de uma pasta e escreve o relatório na própria pasta",
		Long: `Processa todos os PDFs de uma pasta de processo e escreve
sintese_processual.md e sintese_processual.docx na própria pasta.

O modo escolhe o backend: ` + providerList() + `.
Sem modo, vale o default_mode da configuração.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			info, err := os.Stat(folder)
			if err != nil {
				return fmt.Errorf("pasta inválida: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s não é uma pasta", folder)
			}

			cfg, err := config.Load(configFile, ".", folder)
			if err != nil {
				return err
			}

			mode := cfg.DefaultMode
			if len(args) == 2 {
				mode = domain.Provider(args[1])
			}
			if !mode.Valid() {
				return fmt.Errorf("%w: %s (opções: %s)", domain.ErrUnknownProvider, mode, providerList())
			}

			logger, err := newLogger(cfg, folder, verbose)
			if err != nil {
				return fmt.Errorf("configurando log: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			completer, err := provider.New(cfg, mode)
			if err != nil {
				return err
			}
			retrying := provider.NewRetryCompleter(completer, cfg.Provider.RetryWait(), logger)

			synth := service.New(cfg, loader.New(logger), retrying, mode, logger)
			result, err := synth.Run(cmd.Context(), folder, writeXLSX)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Relatório gerado:")
			fmt.Fprintln(cmd.OutOrStdout(), "  "+result.MarkdownPath)
			fmt.Fprintln(cmd.OutOrStdout(), "  "+result.DocxPath)
			if result.XLSXPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+result.XLSXPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "caminho do arquivo de configuração (default: sintese.yaml)")
	cmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "também gera sintese_processual.xlsx")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log em nível debug")
	return cmd
}

// newLogger builds a zap logger writing to stdout and to Log.txt inside the
// process folder, so every run leaves its trace next to the report.
func newLogger(cfg *config.Config, folder string, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Log.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stdout", filepath.Join(folder, service.LogFileName)}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func providerList() string {
	names := make([]string, 0, len(domain.Providers))
	for _, p := range domain.Providers {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
