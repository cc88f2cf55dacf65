// Copyright © 2025 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wastore/forwardlist/common"
)

const (
	logLevelFlag    = "log-level"
	logLocationFlag = "log-location"
	outputTypeFlag  = "output-type"
)

// represents the raw root flags, before the environment is consulted
type rawRootArgs struct {
	logLevel    string
	logLocation string
	outputType  string
}

// session holds what every subcommand shares for the lifetime of one invocation
type session struct {
	runID  common.RunID
	logger common.ILoggerCloser
	output *outputWriter
}

// each subcommand file registers its constructor from init()
var subcommands []func(*session) *cobra.Command

func newRootCmd(s *session) *cobra.Command {
	raw := rawRootArgs{}

	rootCmd := &cobra.Command{
		Version:       common.ForwardListVersion, // will enable the user to see the version info in the standard posix way: --version
		Use:           "forwardlist",
		Short:         rootCmdShortDescription,
		Long:          rootCmdLongDescription,
		SilenceErrors: true, // errors are reported through the output writer, in the selected format
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.start(cmd.Flags(), raw, cmd.CommandPath())
		},
	}

	rootCmd.SetUsageTemplate(strings.Replace((&cobra.Command{}).UsageTemplate(), "Global Flags", "Flags Applying to All Commands", -1))
	addRootFlags(rootCmd.PersistentFlags(), &raw)

	for _, newCmd := range subcommands {
		rootCmd.AddCommand(newCmd(s))
	}
	return rootCmd
}

func addRootFlags(flags *pflag.FlagSet, raw *rawRootArgs) {
	flags.StringVar(&raw.logLevel, logLevelFlag, common.EEnvironmentVariable.LogLevel().DefaultValue,
		"Define the log verbosity for the run log file, available levels: None, Panic, Error, Warning, Info and Debug.")
	flags.StringVar(&raw.logLocation, logLocationFlag, "",
		"Folder to write the run log file to. No log file is written when it is empty.")
	flags.StringVar(&raw.outputType, outputTypeFlag, common.EEnvironmentVariable.OutputType().DefaultValue,
		"Format of the command's output. The choices include: text, json. The default value is 'text'.")
}

// flagOrEnvironment prefers a flag given on the command line, then the environment variable, then its default.
func flagOrEnvironment(flags *pflag.FlagSet, name string, flagValue string, env common.EnvironmentVariable) string {
	if flags.Changed(name) {
		return flagValue
	}
	return common.GetEnvironmentVariable(env)
}

func (s *session) start(flags *pflag.FlagSet, raw rawRootArgs, commandPath string) error {
	var outputFormat OutputFormat
	if err := outputFormat.Parse(flagOrEnvironment(flags, outputTypeFlag, raw.outputType, common.EEnvironmentVariable.OutputType())); err != nil {
		return errors.Wrap(err, "invalid output type")
	}
	s.output.SetOutputFormat(outputFormat)

	var logLevel common.LogLevel
	if err := logLevel.Parse(flagOrEnvironment(flags, logLevelFlag, raw.logLevel, common.EEnvironmentVariable.LogLevel())); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	logLocation := flagOrEnvironment(flags, logLocationFlag, raw.logLocation, common.EEnvironmentVariable.LogLocation())
	if logLocation == "" {
		logLevel = common.LogNone
	}

	logger, err := common.NewRunLogger(s.runID, logLevel, logLocation)
	if err != nil {
		return err
	}
	s.logger = logger
	s.logger.Log(common.LogInfo, "Starting "+commandPath)
	return nil
}

func (s *session) close() {
	if s.logger != nil {
		s.logger.CloseLog()
	}
}

// Execute runs the command line of the process and returns the code it should exit with.
func Execute() ExitCode {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) ExitCode {
	s := &session{runID: common.NewRunID(), output: newOutputWriter(stdout, stderr)}
	s.output.runID = s.runID
	defer s.close()

	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if s.logger != nil {
			s.logger.Log(common.LogError, err.Error())
		}
		s.output.Error(err)
		return EExitCode.Error()
	}
	return EExitCode.Success()
}
