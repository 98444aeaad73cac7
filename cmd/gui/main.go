package main

import (
	"embed"
	"io/fs"
	"net/http"
	"os"

	"schemebridge/internal/config"
	"schemebridge/internal/logger"
	"schemebridge/internal/storage"
	api "schemebridge/pkg/api"
	"schemebridge/pkg/model"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend
var assets embed.FS

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		println("加载配置失败:", err.Error())
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Writers: cfg.Log.Writer,
		File:    cfg.Log.File,
	})

	db, err := storage.Open(cfg.Sqlite.Dsn, cfg.Sqlite.Prefix, log)
	if err != nil {
		log.Err(err, "打开数据库失败")
		os.Exit(1)
	}
	defer storage.Close(db)

	frontend, err := fs.Sub(assets, "frontend")
	if err != nil {
		log.Err(err, "加载前端资源失败")
		os.Exit(1)
	}

	base := model.SessionConfig{
		DevToolsURL:      cfg.Devtools.URL,
		Workers:          cfg.Loop.Workers,
		QueueSize:        cfg.Loop.QueueSize,
		ProcessTimeoutMS: cfg.Loop.ProcessTimeoutMS,
		Routes:           cfg.Routes,
	}
	app := NewApp(api.NewService(db, log), base, http.FileServer(http.FS(frontend)), log)

	err = wails.Run(&options.App{
		Title:  "schemebridge",
		Width:  1100,
		Height: 720,
		AssetServer: &assetserver.Options{
			Handler: app,
		},
		OnStartup:  app.startup,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Err(err, "启动界面失败")
	}
}
