// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/wdamron/sysf"
	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/prelude"
	"github.com/wdamron/sysf/types"
)

type Context struct {
	Out io.Writer
}

type RunCmd struct {
	Names    []string `arg:"" optional:"" name:"name" help:"Only run the examples with these names."`
	Parallel int      `short:"p" default:"4" env:"SYSF_PARALLEL" help:"Maximum number of concurrent inference runs."`
	Trace    bool     `env:"SYSF_TRACE" help:"Log each inference step at the debug level."`
}

func (cmd *RunCmd) Run(ctx *Context) error {
	examples := prelude.Examples()
	if len(cmd.Names) > 0 {
		examples = slices.DeleteFunc(examples, func(ex prelude.Example) bool {
			return !slices.Contains(cmd.Names, ex.Name)
		})
		if len(examples) == 0 {
			return errors.New("no examples named " + fmt.Sprint(cmd.Names))
		}
	}

	exprs := make([]ast.Expr, len(examples))
	for i, ex := range examples {
		exprs[i] = ex.Expr
	}

	results, err := sysf.InferAll(context.Background(), prelude.Env(), exprs, sysf.BatchOptions{
		Limit: cmd.Parallel,
		Trace: cmd.Trace,
	})
	if err != nil {
		return err
	}

	unexpected := report(ctx.Out, examples, results)
	if unexpected > 0 {
		return errors.New(strconv.Itoa(unexpected) + " of " + strconv.Itoa(len(examples)) + " examples had unexpected results")
	}
	return nil
}

type EnvCmd struct{}

func (cmd *EnvCmd) Run(ctx *Context) error {
	env := prelude.Env()
	for _, name := range env.Names() {
		t, _ := env.Lookup(name)
		fmt.Fprintf(ctx.Out, "%s : %s\n", code(name), types.TypeString(t))
	}
	return nil
}

var cli struct {
	Verbose int  `short:"v" type:"counter" env:"SYSF_VERBOSE" help:"Increase log verbosity (repeat for more)."`
	NoColor bool `help:"Disable colored output."`

	Run RunCmd `cmd:"" default:"withargs" help:"Infer the types of the example expressions."`
	Env EnvCmd `cmd:"" help:"List the builtin type-environment."`
}

func main() {
	// a missing .env file is not an error
	_ = godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.Name("sysf"),
		kong.Description("Type inference for System F with impredicative instantiation."),
		kong.UsageOnError(),
	)

	commonlog.Configure(cli.Verbose, nil)
	if cli.NoColor {
		color.NoColor = true
	}

	err := ctx.Run(&Context{Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
