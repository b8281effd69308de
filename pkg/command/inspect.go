// Copyright (c) 2022 Cisco Systems, Inc. and its affiliates
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	armgo "github.com/CloudNativeSDWAN/armwire/pkg/arm-go"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
)

var errUnknownValues = fmt.Errorf("payloads contain unknown enum values")

type inspectOptions struct {
	kind   string
	strict bool
	print  bool
}

// inspection is what came out of decoding a file.
type inspection struct {
	file     string
	value    any
	findings []arm.Finding
}

func getInspectCommand(opts *Options) *cobra.Command {
	iopts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect --kind KIND FILE...",
		Short: "Decode payloads from files.",
		Long: `Decode each file into the model of the given kind and report
the enum values the model does not know about.

Files are decoded concurrently. Use "armwire kinds" for the list of kinds.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, found := armgo.KindByName(iopts.kind); !found {
				return fmt.Errorf("unknown kind %q", iopts.kind)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := armgo.KindByName(iopts.kind)

			results, err := inspectFiles(commandContext(cmd), kind, args)
			if err != nil {
				return err
			}

			return reportInspections(cmd.OutOrStdout(), opts, iopts, results)
		},
		Example: "inspect --kind task --strict task1.json task2.json",
	}

	// Flags
	cmd.Flags().StringVarP(&iopts.kind, "kind", "k", "",
		"the kind of the payloads.")
	cmd.Flags().BoolVar(&iopts.strict, "strict", false,
		"whether unknown enum values are errors.")
	cmd.Flags().BoolVarP(&iopts.print, "print", "p", false,
		"whether to print the payloads as they are encoded back.")
	cmd.MarkFlagRequired("kind")

	return cmd
}

func inspectFiles(ctx context.Context, kind armgo.Kind, files []string) ([]inspection, error) {
	results := make([]inspection, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("could not read %s: %w", file, err)
			}

			value, err := kind.Decode(data)
			if err != nil {
				return fmt.Errorf("could not decode %s as %s: %w", file, kind.Name, err)
			}

			results[i] = inspection{
				file:     file,
				value:    value,
				findings: arm.Audit(value),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func reportInspections(w io.Writer, opts *Options, iopts *inspectOptions, results []inspection) error {
	unknown := []string{}
	for _, res := range results {
		warnFindings(opts.log, res.file, res.findings)

		fmt.Fprintf(w, "%s: %d unknown enum values\n", res.file, len(res.findings))
		for _, f := range res.findings {
			fmt.Fprintf(w, "  %s %s=%q\n", f.Path, f.Enum, f.Value)
		}

		if iopts.print {
			if err := writeJSON(w, res.value, true); err != nil {
				return err
			}
		}

		if len(res.findings) > 0 {
			unknown = append(unknown, res.file)
		}
	}

	if iopts.strict && len(unknown) > 0 {
		return fmt.Errorf("%w: %s", errUnknownValues, strings.Join(unknown, ", "))
	}

	return nil
}
