// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"

	"github.com/xverify/xverify-cli/cmd/contractcmd"
	"github.com/xverify/xverify-cli/pkg/application"
	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/cobrautils"
	"github.com/xverify/xverify-cli/pkg/config"
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/prompts"
	"github.com/xverify/xverify-cli/pkg/ux"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.App

	logLevel   string
	configFile string

	Version = ""
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "xverify",
		Long: `xverify builds MultiversX smart contracts inside the reproducible contract
builder image, helps deploying them with mxpy and submits them for source
verification.

To get started, run xverify contract run in your contracts workspace.`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.DefaultLogLevel, "log level for the log file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file with defaults for the build tool flags")

	app = application.New()
	rootCmd.AddCommand(contractcmd.NewCmd(app))

	cobrautils.ConfigureRootCmd(rootCmd)
	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	conf := config.New()
	if err := conf.Load(log, configFile); err != nil {
		return err
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed getting the working directory: %w", err)
	}
	app.Setup(baseDir, workDir, log, conf, prompts.NewPrompter(), binutils.NewRunner(), afero.NewOsFs())
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("unable to get system user: %w", err)
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level)
	log := zap.New(core).Named("xverify")
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). An interrupt cancels the running command and
// any process it spawned.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if app != nil && app.Log != nil {
		_ = app.Log.Sync()
	}
	cobrautils.HandleErrors(err)
}
