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
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wastore/forwardlist/common"
	"github.com/wastore/forwardlist/listops"
)

const (
	scriptFileFlag  = "script-file"
	elementTypeFlag = "type"
)

// represents the raw run command input from the user
type rawRunCmdArgs struct {
	scriptFile  string
	elementType string
}

type cookedRunCmdArgs struct {
	script      string
	elementType listops.ElementType
}

// validates and transform raw input into cooked input
func (raw rawRunCmdArgs) cook(args []string, stdin io.Reader) (cookedRunCmdArgs, error) {
	cooked := cookedRunCmdArgs{}

	if err := cooked.elementType.Parse(raw.elementType); err != nil {
		return cooked, errors.Wrapf(err, "invalid --%s %q, the choices are int and text", elementTypeFlag, raw.elementType)
	}

	switch {
	case len(args) == 1 && raw.scriptFile != "":
		return cooked, errors.New("give the script either as an argument or with --" + scriptFileFlag + ", not both")
	case len(args) == 1:
		cooked.script = args[0]
	case raw.scriptFile != "":
		b, err := os.ReadFile(raw.scriptFile)
		if err != nil {
			return cooked, errors.Wrap(err, "cannot read script file")
		}
		cooked.script = string(b)
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return cooked, errors.Wrap(err, "cannot read script from standard input")
		}
		cooked.script = string(b)
	}

	return cooked, nil
}

func init() {
	subcommands = append(subcommands, newRunCmd)
}

func newRunCmd(s *session) *cobra.Command {
	raw := rawRunCmdArgs{}

	runCmd := &cobra.Command{
		Use:     "run [script]",
		Short:   runCmdShortDescription,
		Long:    runCmdLongDescription,
		Example: runCmdExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cooked, err := raw.cook(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s.logger.Log(common.LogDebug, "Running script with "+cooked.elementType.String()+" elements:\n"+cooked.script)
			transcript, err := listops.RunScript(cmd.Context(), cooked.elementType, cooked.script, s.logger)
			for _, line := range transcript {
				s.output.Info(line)
			}
			return err
		},
	}

	runCmd.Flags().StringVar(&raw.scriptFile, scriptFileFlag, "", "Read the script from this file instead of the argument or standard input.")
	runCmd.Flags().StringVar(&raw.elementType, elementTypeFlag, listops.EElementType.Int().String(), "Element type of the list: int or text.")
	return runCmd
}
