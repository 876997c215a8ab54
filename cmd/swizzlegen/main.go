// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command swizzlegen generates the named swizzle accessors of the linalg
// vector types from a table of component selections.
//
// Usage:
//
//	swizzlegen --output linalg --package linalg
//
// Or via go:generate from the linalg package:
//
//	//go:generate go run ../cmd/swizzlegen --output . --package linalg
//
// For every selection of two or more distinct components (xyzw or rgba
// letters) it emits a getter returning the selected components as a vector and
// a pointer setter scattering a vector back into them.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gen := &Generator{}
	cmd := &cobra.Command{
		Use:           "swizzlegen",
		Short:         "Generate named swizzle accessors for the linalg vector types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gen.Run(cmd.Context()); err != nil {
				return err
			}
			dims := make([]string, len(gen.Dims))
			for i, d := range gen.Dims {
				dims[i] = fmt.Sprintf("Vector%d", d)
			}
			fmt.Printf("Successfully generated swizzles for: %s\n", strings.Join(dims, ", "))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gen.OutputDir, "output", ".", "Output directory")
	flags.StringVar(&gen.Package, "package", "linalg", "Output package name")
	flags.StringVar(&gen.FileName, "file", "swizzle_gen.go", "Output file name")
	flags.IntSliceVar(&gen.Dims, "dims", []int{2, 3, 4}, "Vector dimensions to generate")
	flags.BoolVarP(&gen.Verbose, "verbose", "v", false, "Print the swizzle count per dimension")
	return cmd
}
