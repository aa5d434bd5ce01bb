// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Logger *UserLog

type UserLog struct {
	log    *zap.Logger
	Writer io.Writer
}

func NewUserLog(log *zap.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = &UserLog{
			log:    log,
			Writer: userwriter,
		}
	}
}

func (ul *UserLog) fileLog() *zap.Logger {
	if ul == nil || ul.log == nil {
		return zap.NewNop()
	}
	return ul.log
}

func (ul *UserLog) writer() io.Writer {
	if ul == nil || ul.Writer == nil {
		return os.Stdout
	}
	return ul.Writer
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	fmt.Fprint(ul.writer(), formattedMsg+"\n")
	ul.fileLog().Info(formattedMsg)
}

// Info prints to the log file
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.fileLog().Info(fmt.Sprintf(msg, args...))
}

// Warn prints to the log file
func (ul *UserLog) Warn(msg string, args ...interface{}) {
	ul.fileLog().Warn(fmt.Sprintf(msg, args...))
}

// Error prints to the log file
func (ul *UserLog) Error(msg string, args ...interface{}) {
	ul.fileLog().Error(fmt.Sprintf(msg, args...))
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "✓" // Unicode for checkmark symbol
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "✗" // Unicode for X symbol
	red := color.New(color.FgHiRed).SprintFunc()
	ul.PrintToUser(red(xmark)+" "+msg, args...)
}

func (ul *UserLog) YellowToUser(msg string, args ...interface{}) {
	yellow := color.New(color.FgHiYellow).SprintFunc()
	ul.PrintToUser("%s", yellow(fmt.Sprintf(msg, args...)))
}

func (ul *UserLog) PrintLineSeparator() {
	ul.PrintToUser("==============================================")
}

func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}
