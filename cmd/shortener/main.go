package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/app"
	"github.com/fsdevblog/shortlinks/internal/bmeta"
	"github.com/fsdevblog/shortlinks/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bmeta.Print(buildVersion, buildDate, buildCommit)

	appConf := config.MustLoadConfig(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a := app.Must(app.New(ctx, appConf))

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error("server stopped with error", zap.Error(err))
		panic(err)
	}
}
