// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/buffos/go-microcharts/chart"
	"github.com/buffos/go-microcharts/dataset"
)

// Version is set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	cfgFile string
	verbose bool
)

var supportedFormats = map[string]bool{"html": true, "svg": true, "png": true, "jpg": true, "jpeg": true}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cobra.OnInitialize(initConfig)
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		log.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the microcharts command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "microcharts",
		Short: "Render line, point and bar charts",
		Long:  `Render line, point and bar charts from a template and a data file as SVG, HTML, PNG or JPEG.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
				chart.SetLogger(slog.New(log.Default()))
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.microcharts.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewVersionCmd())
	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Warn("Cannot resolve home directory", "error", err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".microcharts")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
		log.Warn("Can't read config", "error", err)
		return
	}
	log.Debug("Using config file", "path", viper.ConfigFileUsed())
}

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var output, sheet string

	cmd := &cobra.Command{
		Use:   "render <template> <data> <format>",
		Short: "Render a chart",
		Long: `Render a chart from a template (JSON or YAML) and a data file (JSON, YAML, CSV or XLSX).

Format is one of svg, html, png, jpg or jpeg. Output goes to stdout unless -o is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), renderOptions{
				TemplatePath: args[0],
				DataPath:     args[1],
				Format:       strings.ToLower(args[2]),
				Output:       output,
				Sheet:        sheet,
				Width:        viper.GetFloat64("width"),
				Height:       viper.GetFloat64("height"),
				Kind:         viper.GetString("kind"),
				Engine:       viper.GetString("engine"),
				Measure:      viper.GetString("measure"),
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet of an XLSX data file (default: first sheet)")
	cmd.Flags().Float64("width", 0, "Canvas width, overrides the template")
	cmd.Flags().Float64("height", 0, "Canvas height, overrides the template")
	cmd.Flags().String("kind", "", "Chart kind (line, point or bar), overrides the template")
	cmd.Flags().String("engine", engineNative, "Raster engine for png/jpg: native or browser")
	cmd.Flags().String("measure", measureFont, "Text metrics for svg/html: font or estimate")

	for _, name := range []string{"width", "height", "kind", "engine", "measure"} {
		viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func runRender(ctx context.Context, opts renderOptions, stdout io.Writer) (err error) {
	if !supportedFormats[opts.Format] {
		return fmt.Errorf("unsupported export format '%s'. Supported formats: html, svg, png, jpg/jpeg", opts.Format)
	}

	log.Debug("Reading template file", "path", opts.TemplatePath)
	template, err := loadTemplate(opts.TemplatePath)
	if err != nil {
		return err
	}
	log.Debug("Reading data file", "path", opts.DataPath)
	records, err := dataset.Load(opts.DataPath, opts.Sheet)
	if err != nil {
		return err
	}
	job, err := newChartJob(template, records, opts)
	if err != nil {
		return err
	}

	// --- Determine Output Writer ---
	outputWriter := stdout
	if opts.Output != "" {
		outFile, createErr := os.Create(opts.Output)
		if createErr != nil {
			return fmt.Errorf("creating output file '%s': %w", opts.Output, createErr)
		}
		defer func() {
			if closeErr := outFile.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file '%s': %w", opts.Output, closeErr)
			}
			if err != nil {
				log.Debug("Removing incomplete output file", "path", opts.Output)
				if removeErr := os.Remove(opts.Output); removeErr != nil {
					log.Warn("Could not remove output file", "path", opts.Output, "error", removeErr)
				}
			}
		}()
		outputWriter = outFile
	}

	// --- Generation ---
	log.Debug("Generating output", "format", opts.Format, "kind", job.Chart.Kind().Name(),
		"entries", len(records), "width", job.Width, "height", job.Height)

	switch opts.Format {
	case "svg", "html":
		metrics, family, closeMetrics, err := newMetrics(opts.Measure)
		if err != nil {
			return err
		}
		defer closeMetrics()

		svgContent, err := GenerateSVG(job, metrics, family)
		if err != nil {
			return fmt.Errorf("SVG generation failed: %w", err)
		}
		content := svgContent
		if opts.Format == "html" {
			content = generateHTML(svgContent, job.Chart.Kind().Name()+" chart", job.Background)
		}
		if _, err := io.WriteString(outputWriter, content); err != nil {
			return fmt.Errorf("failed to write %s output: %w", strings.ToUpper(opts.Format), err)
		}
	case "png", "jpg", "jpeg":
		if err := generateImage(ctx, job, opts, outputWriter); err != nil {
			return fmt.Errorf("error generating %s: %w", opts.Format, err)
		}
	}

	if opts.Output != "" {
		log.Info("Output saved", "path", opts.Output, "format", strings.ToUpper(opts.Format))
	}
	return nil
}

// NewVersionCmd creates a new command that displays version information
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  `Display the version, git commit, and build date of the CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(map[string]string{
				"version":   Version,
				"gitCommit": GitCommit,
				"buildDate": BuildDate,
			})
		},
	}
}
