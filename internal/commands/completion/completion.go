package completion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_issue_categorizer_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _issue_categorizer_bash_autocomplete issue-categorizer
`

const zshCompletionScript = `#compdef issue-categorizer

_issue_categorizer() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _issue_categorizer issue-categorizer
`

const installMarker = "# issue-categorizer shell completion"

const installInfo = `
` + installMarker + `
if command -v issue-categorizer >/dev/null 2>&1; then
	source <(issue-categorizer completion %s)
fi
`

type CompletionCommandFactory struct{}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{}
}

func (c *CompletionCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "completion",
		Usage:       t.GetMessage("completion.command_usage", 0, nil),
		Description: t.GetMessage("completion.command_details", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion.bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := io.WriteString(cmd.Root().Writer, bashCompletionScript)
					return err
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion.zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := io.WriteString(cmd.Root().Writer, zshCompletionScript)
					return err
				},
			},
			{
				Name:  "install",
				Usage: t.GetMessage("completion.install_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return install(cmd.Root().Writer, t, os.Getenv("SHELL"))
				},
			},
		},
	}
}

func install(w io.Writer, t *i18n.Translations, shell string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_home_dir", 0, map[string]interface{}{"Error": err.Error()}))
	}

	var shellName string
	switch {
	case strings.Contains(shell, "zsh"):
		shellName = "zsh"
	case strings.Contains(shell, "bash"):
		shellName = "bash"
	default:
		return fmt.Errorf("%s", t.GetMessage("completion.error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
	}
	profile := filepath.Join(home, "."+shellName+"rc")

	if content, err := os.ReadFile(profile); err == nil && strings.Contains(string(content), installMarker) {
		_, _ = fmt.Fprintln(w, t.GetMessage("completion.already_installed", 0, map[string]interface{}{"File": profile}))
		return nil
	}

	f, err := os.OpenFile(profile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_open_config", 0, map[string]interface{}{"Error": err.Error()}))
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, installInfo, shellName); err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_write_config", 0, map[string]interface{}{"Error": err.Error()}))
	}

	_, _ = fmt.Fprintln(w, t.GetMessage("completion.installed_success", 0, map[string]interface{}{"File": profile}))
	_, _ = fmt.Fprintln(w, t.GetMessage("completion.restart_shell", 0, nil))
	_, _ = fmt.Fprintf(w, "  source %s\n", profile)
	return nil
}
