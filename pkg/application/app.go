// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/config"
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/prompts"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// App bundles the collaborators every command needs. Tests swap Prompt,
// Runner and Fs for fakes.
type App struct {
	Log     *zap.Logger
	Conf    *config.Config
	Prompt  prompts.Prompter
	Runner  binutils.Runner
	Fs      afero.Fs
	baseDir string
	workDir string
}

func New() *App {
	return &App{}
}

func (app *App) Setup(
	baseDir string,
	workDir string,
	log *zap.Logger,
	conf *config.Config,
	prompt prompts.Prompter,
	runner binutils.Runner,
	fs afero.Fs,
) {
	app.baseDir = baseDir
	app.workDir = workDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Runner = runner
	app.Fs = fs
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

func (app *App) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetWorkDir is the directory relative paths given by the user resolve against
func (app *App) GetWorkDir() string {
	return app.workDir
}
