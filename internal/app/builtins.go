package app

import (
	"fmt"
	"os"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"go.trai.ch/zerr"
)

// builtin runs a command inside the shell and reports whether the shell should exit.
type builtin func(a *App, args []string) bool

// builtins are consulted before the executor for single commands.
var builtins = map[string]builtin{
	"exit": func(*App, []string) bool { return true },
	"cd":   (*App).changeDir,
	"dir":  (*App).listDir,
	"stop": unsupported("stop"),
	"cont": unsupported("cont"),
}

// changeDir changes the shell's working directory, to $HOME without argument.
func (a *App) changeDir(args []string) bool {
	target := os.Getenv("HOME")
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		a.logger.Error(zerr.With(zerr.Wrap(domain.ErrBuiltinFailed, "cd"), "reason", "HOME not set"))
		return false
	}

	if err := os.Chdir(target); err != nil {
		a.logger.Error(zerr.With(zerr.With(zerr.Wrap(domain.ErrBuiltinFailed, "cd"), "dir", target), "reason", pathReason(err)))
	}
	return false
}

// listDir prints the entries of a directory, the working directory by default.
func (a *App) listDir(args []string) bool {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		a.logger.Error(zerr.With(zerr.With(zerr.Wrap(domain.ErrBuiltinFailed, "dir"), "dir", target), "reason", pathReason(err)))
		return false
	}

	for _, entry := range entries {
		_, _ = fmt.Fprintln(a.stdout, entry.Name())
	}
	return false
}

func unsupported(name string) builtin {
	return func(a *App, _ []string) bool {
		a.logger.Error(zerr.Wrap(domain.ErrUnsupportedBuiltin, name))
		return false
	}
}

func pathReason(err error) string {
	if pathErr, ok := err.(*os.PathError); ok { //nolint:errorlint // os functions return *PathError unwrapped
		return pathErr.Err.Error()
	}
	return err.Error()
}
