// Package dump implements the dump subcommand: it decodes WebVTT files and
// writes the resulting cues in a readable form.
package dump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"vttc/config"
	"vttc/state"
	"vttc/webvtt"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	// no destination means STDOUT
	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Dump.Format
	if cmd.IsSet("format") {
		format = cmd.String("format")
	}
	if format != "text" && format != "json" {
		log.Warn("Unknown output format requested, switching to text", zap.String("format", format))
		format = "text"
	}

	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.String("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

// process handles dumping independently of CLI framework. It determines the
// input type (directory or single file) and processes accordingly.
func process(ctx context.Context, src, dst, format string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, format, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	return processFile(ctx, src, filepath.Base(src), dst, format, log)
}

// processDir walks directory tree finding vtt files and processes them.
func processDir(ctx context.Context, dir, dst, format string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".vtt") {
			log.Debug("Skipping file, not recognized as subtitles", zap.String("file", path))
			return nil
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processFile(ctx, path, src, dst, format, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processFile decodes a single subtitle file and writes the dump. "src" is
// the source path relative to the original argument, used to derive the
// output file name when destination directory was given.
func processFile(ctx context.Context, path, src, dst, format string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	log.Info("Decoding starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Info("Decoding completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open subtitle source (%s): %w", src, err)
	}
	defer file.Close()

	cues, err := webvtt.NewParser(log).Parse(file)
	if err != nil {
		return fmt.Errorf("unable to parse subtitle source (%s): %w", src, err)
	}
	log.Debug("Decoded cues", zap.String("from", src), zap.Int("count", len(cues)))

	out := io.Writer(os.Stdout)
	if len(dst) > 0 {
		outputName := buildOutputPath(src, dst, format)

		if _, err := os.Stat(outputName); err == nil {
			if !env.Overwrite {
				return fmt.Errorf("output file already exists: %s", outputName)
			}
			log.Warn("Overwriting existing file", zap.String("file", outputName))
			if err = os.Remove(outputName); err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return err
		} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}

		f, err := os.Create(outputName)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if format == "json" {
		return writeJSON(out, cues)
	}
	return writeText(out, cues, env.Cfg.Dump.IncludeStyling)
}

// buildOutputPath derives the output file name under destination directory
// from the relative source path.
func buildOutputPath(src, dst, format string) string {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	ext := ".txt"
	if format == "json" {
		ext = ".json"
	}
	return filepath.Join(dst, filepath.Dir(src), config.CleanFileName(name)+ext)
}
