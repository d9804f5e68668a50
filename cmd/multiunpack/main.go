package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/profile"
	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/scanner"
)

// ExitNoArchives is the process exit code when the scanned tree contains no
// archives at all.
const ExitNoArchives = 2

var loggerDeferFunc func() error

func main() {
	app := &cli.Command{
		Name:      "multiunpack",
		Usage:     "Generate extraction commands for archives with passwords in file/folder names",
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "logfile",
				Usage: "Log to `FILE` instead of stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored log output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Be more verbose",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Platform profile `FILE` (YAML) overriding target platform and tool names",
			},
			&cli.BoolFlag{
				Name:  "version",
				Usage: "Print version information",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "directory",
				UsageText: "Starting root directory for the recursive scan",
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger, err := createLogger(
				command.String("logfile"),
				command.Bool("verbose"),
				command.Bool("no-color"),
			)
			if err != nil {
				return nil, err
			}

			loggerDeferFunc = func() error {
				return logger.Sync()
			}

			return withLogger(ctx, logger), nil
		},
		Action: run,
		ExitErrHandler: func(ctx context.Context, command *cli.Command, err error) {
			if err == nil {
				return
			}

			if errors.Is(err, scanner.ErrNoArchives) {
				if logger := tryLogger(ctx); logger != nil {
					logger.Warn("no archives found")
				}
				os.Exit(ExitNoArchives)
			}

			if logger := tryLogger(ctx); logger != nil {
				logger.Fatal("failed to run application", zap.Error(err))
			} else {
				log.Fatal(fmt.Errorf("failed to run application: %w", err))
			}
		},
	}

	defer func() {
		if loggerDeferFunc != nil {
			loggerDeferFunc()
		}
	}()

	app.Run(context.Background(), os.Args)
}

func run(ctx context.Context, command *cli.Command) error {
	if command.Bool("version") {
		printVersion()
		return nil
	}

	logger := getLogger(ctx)
	logger.Info(versionString())

	root := command.StringArg("directory")
	if root == "" {
		return fmt.Errorf("no directory provided")
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", root, err)
	}
	logger.Info("root directory", zap.String("dir", rootAbs))

	fs := afero.NewOsFs()
	platform, err := profile.Load(fs, command.String("profile"))
	if err != nil {
		return err
	}

	out, err := scanner.New(fs, logger.Named("scanner"), platform).Scan(rootAbs)
	if err != nil {
		return err
	}

	return out.Render(os.Stdout, versionString(), time.Now())
}
