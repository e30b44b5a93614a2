package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/AyAztuB/goutils/assert"
	"github.com/AyAztuB/goutils/logger"
	"github.com/AyAztuB/goutils/stack"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		level   string
		logFile string
		envFile string
		crash   bool
	)

	cmd := &cobra.Command{
		Use:   "goutils-demo",
		Short: "Demonstrates the logging facility, stack and assertion helpers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("load env file %s: %w", envFile, err)
				}
			}

			// Environment first, explicit flags override.
			logger.SetLevelFromEnv()
			if level != "" && !logger.SetLevelFromString(level) {
				return fmt.Errorf("unknown log level %q", level)
			}
			if logFile != "" {
				if err := logger.SetFile(logFile); err != nil {
					return err
				}
			} else if err := logger.SetFileFromEnv(""); err != nil && err != logger.ErrNoLogFile {
				return err
			}
			logger.SetCallback(logger.LogOnStdout)
			defer logger.Shutdown()

			return run(crash)
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "severity threshold (FATAL..DEBUG, QUIET, FULL)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "log file path, or \"stderr\" (default: LOG_FILE)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load before configuration")
	cmd.Flags().BoolVar(&crash, "crash", false, "finish with a fatal event to demonstrate the backtrace")

	return cmd
}

func run(crash bool) error {
	logger.Infof("threshold is %s", logger.GetLevel())

	logger.Debugf("debug message")
	logger.Tracef("trace message")
	logger.Infof("hello %s", "world")
	logger.Warnf("be careful")
	logger.Timeoutf("operation exceeded its deadline")
	logger.Errorf("oops: %v", "something happened")

	s := stack.FromSlice([]string{"first", "second"})
	s.Push("third")
	logger.Infof("stack holds %d elements: %s", s.Len(), s)
	top, ok := s.Pop()
	assert.Assert(ok, "pop from a non-empty stack")
	logger.Infof("popped %q", top)

	if err := assert.Verify(s.Len() == 2, "expected 2 elements, have %d", s.Len()); err != nil {
		return err
	}

	if crash {
		logger.Fatalf("critical failure requested")
	}
	return nil
}
