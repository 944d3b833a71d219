package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tripkeeper/internal/client/config"
	"github.com/iudanet/tripkeeper/internal/client/iocli"
	"github.com/iudanet/tripkeeper/internal/client/reconciler"
	"github.com/iudanet/tripkeeper/internal/client/weather"
)

// Cli связывает команды пользователя с реконсилятором и погодным шлюзом.
// Все изменения документа проходят через реконсилятор: CLI никогда не
// пишет в хранилище напрямую.
type Cli struct {
	io         iocli.IO
	reconciler *reconciler.Reconciler
	weather    *weather.Guard
	cfg        config.Config
	cfgPath    string
	version    string
}

func New(io iocli.IO, rec *reconciler.Reconciler, guard *weather.Guard, cfg config.Config, cfgPath, version string) *Cli {
	return &Cli{
		io:         io,
		reconciler: rec,
		weather:    guard,
		cfg:        cfg,
		cfgPath:    cfgPath,
		version:    version,
	}
}

// Run выполняет одну команду CLI. Ошибка означает, что команда не
// выполнена; сетевые сбои при этом ошибкой не считаются — правки
// уже сохранены локально.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "show":
		return c.runShow(ctx)
	case "set":
		return c.runSet(ctx, args)
	case "add":
		return c.runAdd(ctx)
	case "remove":
		return c.runRemove(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "status":
		return c.runStatus(ctx)
	case "weather":
		return c.runWeather(ctx, args)
	case "configure":
		return c.runConfigure(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам.
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageTemplate)
}
