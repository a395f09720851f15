// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes markdown and man pages for every setdiff
// subcommand from the live command tree.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/command"
	"github.com/setdiff/setdiff/internal/version"
)

type Flag struct {
	Names   []string
	Usage   string
	Default string
}

type Subcommand struct {
	ID        string
	Short     string
	Usage     string
	Flags     []Flag
	Date      string
	Version   string
	IDUpper   string
	Namespace string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

const mdTemplate = `# setdiff {{.ID}}

{{.Short}}

## Usage

` + "```" + `
{{.Usage}}
` + "```" + `

## Flags

| Flag | Description | Default |
|------|-------------|---------|
{{- range .Flags}}
| {{flagNames .Names}} | {{.Usage}} | {{.Default}} |
{{- end}}

Every flag can also be set as ` + "`{{.Namespace}}.<flag>`" + ` or ` + "`<flag>`" + ` in setdiff.yaml.

_Generated {{.Date}} for {{.Version}}._
`

const manTemplate = `.TH SETDIFF-{{.IDUpper}} 1 "{{.Date}}" "{{.Version}}" "setdiff manual"
.SH NAME
setdiff-{{.ID}} \- {{.Short}}
.SH SYNOPSIS
{{.Usage}}
.SH OPTIONS
{{- range .Flags}}
.TP
.B {{flagNames .Names}}
{{.Usage}}{{if .Default}} (default {{.Default}}){{end}}
{{- end}}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}
	docs := os.Args[1]

	app, err := command.InitApp(context.Background(), []string{"setdiff"})
	if err != nil {
		panic(err)
	}

	funcs := template.FuncMap{"flagNames": flagNames}
	types := []Outputs{
		{Template: mdTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: manTemplate, Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "setdiff-", Suffix: ".1"},
	}

	for _, cmd := range app.Commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		sub := describe(cmd)

		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0o755); err != nil {
				panic(err)
			}

			name := filepath.Join(t.Folder, t.Prefix+sub.ID+t.Suffix)
			fmt.Println("Generating", name)

			tmpl := template.Must(template.New(name).Funcs(funcs).Parse(t.Template))
			file, err := os.Create(name)
			if err != nil {
				panic(err)
			}
			if err := tmpl.Execute(file, sub); err != nil {
				panic(err)
			}
			file.Close()
		}
	}
}

// describe flattens a cli.Command into template data.
func describe(cmd *cli.Command) Subcommand {
	sub := Subcommand{
		ID:        cmd.Name,
		Short:     cmd.Usage,
		Usage:     cmd.UsageText,
		Date:      time.Now().Format("January 2, 2006"),
		Version:   strings.TrimPrefix(version.Version, "v"),
		IDUpper:   strings.ToUpper(cmd.Name),
		Namespace: cmd.Name,
	}

	for _, f := range cmd.Flags {
		df, ok := f.(cli.DocGenerationFlag)
		if !ok {
			continue
		}
		fl := Flag{Names: f.Names(), Usage: df.GetUsage()}
		if df.TakesValue() {
			fl.Default = df.GetValue()
		}
		sub.Flags = append(sub.Flags, fl)
	}
	return sub
}

func flagNames(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		if len(n) == 1 {
			out[i] = "-" + n
		} else {
			out[i] = "--" + n
		}
	}
	return strings.Join(out, ", ")
}
