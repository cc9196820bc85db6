// This file is part of seo2 - https://github.com/seo2-lang/seo2
//
// Copyright 2026 The seo2 Authors
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

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seo2-lang/seo2/ast"
	"github.com/seo2-lang/seo2/eval"
	"github.com/seo2-lang/seo2/value"
)

func loadBlock(path string) (*ast.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening AST file")
	}
	defer f.Close()

	var block ast.Block
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&block); err != nil {
		return nil, errors.Wrap(err, "decoding AST file")
	}
	return &block, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <ast.json>",
		Short: "Evaluate a JSON-encoded AST block and print its return values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := loadBlock(args[0])
			if err != nil {
				return err
			}
			log.WithField("file", args[0]).Debug("loaded AST")

			vals, err := eval.Run(block)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValues(vals))
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <ast.json>",
		Short: "Parse and decode a JSON-encoded AST block without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadBlock(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func formatValues(vals []value.Value) string {
	if len(vals) == 0 {
		return "(no return values)"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, "\t")
}

func formatValue(v value.Value) string {
	switch v.Kind() {
	case value.KNil:
		return "nil"
	case value.KBool:
		return fmt.Sprintf("%t", v.AsBool())
	case value.KInt, value.KFloat:
		return value.FormatNumber(v)
	case value.KString:
		return v.AsString()
	case value.KTable:
		return fmt.Sprintf("table: %d", v.AsTable().ID())
	default:
		return "?"
	}
}
