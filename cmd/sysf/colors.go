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
	"fmt"

	"github.com/fatih/color"
)

func code(s string) string {
	if color.NoColor {
		return fmt.Sprintf("`%s`", s)
	}
	return color.BlueString(s)
}

func success(s string) string {
	if color.NoColor {
		return s
	}
	return color.GreenString(s)
}

func conflict(s string) string {
	if color.NoColor {
		return s
	}
	return color.RedString(s)
}

func extra(s string) string {
	if color.NoColor {
		return fmt.Sprintf("(%s)", s)
	}
	return color.New(color.Faint).Sprintf("(%s)", s)
}

func title(s string) string {
	if color.NoColor {
		return s
	}
	return color.New(color.Bold, color.Underline).Sprintf("%s", s)
}
