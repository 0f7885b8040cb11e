package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/cli"
	"resume-builder/internal/shared/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	app := &cli.App{
		TemplatePaths: cfg.TemplatePaths,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Serve: func(addr string, debug bool) error {
			gin.SetMode(gin.ReleaseMode)
			if debug {
				gin.SetMode(gin.DebugMode)
				cfg.Env = "dev"
			}
			built, err := bootstrap.Build(cfg)
			if err != nil {
				return err
			}
			defer built.Close()
			return built.Router.Run(addr)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
