package main

import (
	"fmt"
	"os"
	"path/filepath"

	"SolTools/internal/cli"
	"SolTools/pkg/appcfg"
	"SolTools/pkg/i18n"
	"SolTools/pkg/logx"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		os.Exit(2)
	}

	appConf, err := appcfg.Load(filepath.Join(cwd, "configs", "app.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v (use defaults: en/info)\n", err)
		appConf = &appcfg.Config{Language: "en", LogLevel: "info"}
	}

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		FilePath:             "",
		ConsoleOnly:          true,
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		os.Exit(1)
	}
	defer logx.Close()

	logx.S().Infow("soltools started",
		"cwd", cwd,
		"lang", appConf.Language,
		"log_level", appConf.LogLevel,
		"hide_secrets_in_console", appConf.HideSecretsInConsole,
	)

	r := cli.NewRunner(i18n.Get(appConf.Language))
	r.HideSecretsInConsole = appConf.HideSecretsInConsole
	r.Workers = appConf.Cores
	r.Run()
}
