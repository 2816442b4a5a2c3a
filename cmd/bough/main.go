package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	logger
	v          *viper.Viper
	configFile string
}

/*
exitError carries the exit code of the stage of a command that failed.
*/
type exitError struct {
	code int
	err  error
}

func (ee *exitError) Error() string {
	return ee.err.Error()
}

func (ee *exitError) Unwrap() error {
	return ee.err
}

func exit(code int, err error) error {
	return &exitError{code, err}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cliParser(os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func cliParser(logOutput io.Writer) *cobra.Command {
	config := &rootCmdConfig{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "bough",
		Short:         "bough is a tool to grow binary decision trees",
		Long:          `A tool to grow binary decision trees on numeric features from your data and test how well they classify`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setup(cmd, logOutput)
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress and every grown node on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML file with values for any of the flags, which BOUGH_* environment variables override")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), setCmd(config))
	return rootCmd
}

/*
setup binds the flags of the command being executed to the config's viper
instance, along with the config file and environment, and sets up logging.
*/
func (rc *rootCmdConfig) setup(cmd *cobra.Command, logOutput io.Writer) error {
	rc.v.SetEnvPrefix("bough")
	rc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rc.v.AutomaticEnv()
	if err := rc.v.BindPFlags(cmd.Flags()); err != nil {
		return exit(1, fmt.Errorf("binding flags: %v", err))
	}
	if rc.configFile != "" {
		rc.v.SetConfigFile(rc.configFile)
		if err := rc.v.ReadInConfig(); err != nil {
			return exit(1, fmt.Errorf("reading config file %s: %v", rc.configFile, err))
		}
	}
	rc.logger = newLogger(logOutput, rc.v.GetBool("verbose"))
	return nil
}
