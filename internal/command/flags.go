// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/setdiff/setdiff/internal/report"
)

// Defaults mirror the layout of the HearthstoneJSON build: set files named
// <set>.enUS.json in web/json, published as <set>.json.
const (
	DefaultReference  = "http://hearthstonejson.com/json"
	DefaultCandidate  = "web/json"
	DefaultListSuffix = ".enUS.json"
	DefaultReadSuffix = ".json"
	DefaultRefSuffix  = ".json"
)

// configSources returns the config file sources for a flag: the namespaced
// key (compare.reference) first, then the bare key (reference).
func configSources(ns, path, name string) []cli.ValueSource {
	if path == "" {
		return nil
	}
	var srcs []cli.ValueSource
	if ns != "" {
		srcs = append(srcs, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	return append(srcs, yaml.YAML(name, altsrc.StringSourcer(path)))
}

// sources builds a flag's value chain: SETDIFF_<ENV> then the config file.
func sources(ns, path, name, env string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar("SETDIFF_" + env))
	chain.Chain = append(chain.Chain, configSources(ns, path, name)...)
	return chain
}

// stdoutIsTerminal decides the default of --color.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func NewReferenceFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "reference",
		Aliases: []string{"r"},
		Usage:   "reference source: http(s) base URL, s3://bucket/prefix or directory",
		Value:   DefaultReference,
		Sources: sources(ns, path, "reference", "REFERENCE"),
	}
}

func NewCandidateFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "candidate",
		Aliases: []string{"d"},
		Usage:   "directory holding the locally built sets",
		Value:   DefaultCandidate,
		Sources: sources(ns, path, "candidate", "CANDIDATE"),
	}
}

func NewListSuffixFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "list-suffix",
		Usage:   "suffix of the candidate files that name the sets",
		Value:   DefaultListSuffix,
		Sources: sources(ns, path, "list-suffix", "LIST_SUFFIX"),
	}
}

func NewReadSuffixFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "read-suffix",
		Usage:   "suffix appended to a set name to read the candidate",
		Value:   DefaultReadSuffix,
		Sources: sources(ns, path, "read-suffix", "READ_SUFFIX"),
	}
}

func NewRefSuffixFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "ref-suffix",
		Usage:   "suffix appended to a set name to fetch the reference",
		Value:   DefaultRefSuffix,
		Sources: sources(ns, path, "ref-suffix", "REF_SUFFIX"),
	}
}

func NewExcludeFlag(ns, path string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "exclude",
		Aliases: []string{"x"},
		Usage:   "set names never compared, in addition to AllSets",
		Sources: sources(ns, path, "exclude", "EXCLUDE"),
	}
}

func NewKeyFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   `record key: a field path such as "id" or a template such as "${name} (${id})"`,
		Sources: sources(ns, path, "key", "KEY"),
		Validator: func(value string) error {
			return FlagValidators(value, KeyValidator)
		},
	}
}

func NewFilterFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   `only compare records matching these expressions, e.g. "collectible,type!=HERO"`,
		Sources: sources(ns, path, "filter", "FILTER"),
		Validator: func(value string) error {
			return FlagValidators(value, FilterValidator)
		},
	}
}

func NewStrictKeysFlag(ns, path string) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "strict-keys",
		Usage:   "fail a set whose records share a key",
		Sources: sources(ns, path, "strict-keys", "STRICT_KEYS"),
	}
}

func NewOutputFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format: text, json, yaml or delta",
		Value:   "text",
		Sources: sources(ns, path, "output", "OUTPUT"),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}

func NewColorFlag(ns, path string) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   stdoutIsTerminal(),
		Sources: sources(ns, path, "color", "COLOR"),
	}
}

func NewParallelFlag(ns, path string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "parallel",
		Aliases: []string{"p"},
		Usage:   "number of sets compared at once",
		Value:   1,
		Sources: sources(ns, path, "parallel", "PARALLEL"),
		Validator: func(value int) error {
			return FlagValidators(value, ParallelValidator)
		},
	}
}

func NewSummaryFlag(ns, path string) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "summary",
		Usage:   "print a per-set summary table after the results",
		Sources: sources(ns, path, "summary", "SUMMARY"),
	}
}

func NewPickFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "pick",
		Usage:       "choose the sets to compare interactively",
		HideDefault: true,
	}
}

func NewCacheFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "cache",
			Usage:   "keep fetched references on disk",
			Sources: sources(ns, path, "cache", "USE_CACHE"),
		},
		&cli.DurationFlag{
			Name:    "cache-max-age",
			Usage:   "refetch cached references older than this; 0 keeps them forever",
			Value:   24 * time.Hour,
			Sources: sources(ns, path, "cache-max-age", "CACHE_MAX_AGE"),
		},
	}
}

func NewFetchFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "per-request timeout for http references",
			Value:   30 * time.Second,
			Sources: sources(ns, path, "timeout", "TIMEOUT"),
		},
		&cli.IntFlag{
			Name:    "retries",
			Usage:   "retries for http references",
			Value:   3,
			Sources: sources(ns, path, "retries", "RETRIES"),
		},
	}
}

// NewAWSFlags returns the flags used by s3:// references.
func NewAWSFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Sources: sources(ns, path, "profile", "AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region",
			Sources: sources(ns, path, "region", "AWS_REGION"),
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Usage:   "S3-compatible endpoint URL, e.g. for MinIO",
			Sources: sources(ns, path, "endpoint", "S3_ENDPOINT"),
		},
	}
}

// outputOptions reads the rendering flags.
func outputOptions(cmd *cli.Command) report.Options {
	return report.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
	}
}
