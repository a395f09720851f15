// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/setdiff/setdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for setdiff
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_setdiff()
{
    local cur prev cmd opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "compare diff keys list completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local render="--color -c --filter -f --key -k --output -o --strict-keys"

    case "$cmd" in
        compare)
            opts="$render --reference -r --candidate -d --list-suffix --read-suffix --ref-suffix --exclude -x --parallel -p --summary --pick --cache --cache-max-age --timeout --retries --profile --region --endpoint"
            ;;
        diff)
            opts="$render"
            ;;
        keys)
            opts="--key -k --strict-keys"
            ;;
        list)
            opts="--candidate -d --list-suffix --read-suffix --exclude -x"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml delta" -- "$cur") )
            return 0
            ;;
        --candidate|-d)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _setdiff setdiff
`

const zshCompletionScript = `#compdef setdiff

_setdiff() {
  local -a cmds
  cmds=(
    'compare:compare candidate sets against the reference'
    'diff:compare two local set files'
    'keys:print the key of every record in a set file'
    'list:list the sets in the candidate directory'
    'completion:generate shell completion script'
  )

  local -a render
  render=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[record filter expressions]:filters'
  '(-k --key)'{-k,--key}'[record key field or template]:key'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml delta)'
  '--strict-keys[fail on duplicate keys]'
  )

  local -a candidate
  candidate=(
  '(-d --candidate)'{-d,--candidate}'[candidate directory]:dir:_directories'
  '--list-suffix[suffix of files to list]:suffix'
  '--read-suffix[suffix of files to read]:suffix'
  '*'{-x,--exclude}'[set to skip]:name'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'setdiff commands' cmds
    return
  fi

  case $words[2] in
    compare)
      _arguments -C \
        $render \
        $candidate \
        '(-r --reference)'{-r,--reference}'[reference location]:reference' \
        '--ref-suffix[suffix of reference objects]:suffix' \
        '(-p --parallel)'{-p,--parallel}'[sets compared at once]:n' \
        '--summary[print a summary table]' \
        '--pick[choose sets interactively]' \
        '--cache[cache reference fetches]' \
        '--cache-max-age[cache entry lifetime]:duration' \
        '--timeout[reference fetch timeout]:duration' \
        '--retries[reference fetch retries]:n' \
        '--profile[AWS profile]:profile' \
        '--region[AWS region]:region' \
        '--endpoint[S3 endpoint]:url' \
        '*:set name'
      ;;
    diff)
      _arguments -C $render '1:old:_files' '2:new:_files'
      ;;
    keys)
      _arguments -C \
        '(-k --key)'{-k,--key}'[record key field or template]:key' \
        '--strict-keys[fail on duplicate keys]' \
        '1:file:_files'
      ;;
    list)
      _arguments -C $candidate
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _setdiff setdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(out, zshCompletionScript)
	default:
		return fmt.Errorf("usage: setdiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "setdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
