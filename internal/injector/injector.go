//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/deskshell/deskshell/internal/core/content"
	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/internal/core/shell"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelDebug)
}

func newShell(cfg shell.Config, logger *log.Logger, port content.LocalePort) *shell.Shell {
	return shell.New(cfg, logger, port)
}

func ProvideShell(cfg shell.Config, port content.LocalePort) *shell.Shell {
	wire.Build(log.Provide, newShell)
	return nil
}
