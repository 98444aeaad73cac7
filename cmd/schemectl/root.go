package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"schemebridge/internal/config"
	"schemebridge/internal/logger"
	"schemebridge/internal/script"
	"schemebridge/internal/service"
	"schemebridge/internal/storage"
	"schemebridge/pkg/model"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	cfgFile  string
	logLevel string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "schemectl",
	Short: "用脚本处理自定义 scheme 请求",
	Long: `schemectl 把浏览器或 HTTP 客户端发出的请求交给 JavaScript 处理器脚本。
脚本通过 WebSchemeHandler 注册回调，决定拦截并构造响应，或放行请求。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		log = logger.New(logger.Options{
			Level:   cfg.Log.Level,
			Writers: cfg.Log.Writer,
			File:    cfg.Log.File,
		})
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（YAML）")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别，覆盖配置文件")

	rootCmd.AddCommand(serveHTTPCmd)
	rootCmd.AddCommand(serveCDPCmd)
	rootCmd.AddCommand(netErrorsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(configCmd)
}

func openDB() (*gorm.DB, error) {
	return storage.Open(cfg.Sqlite.Dsn, cfg.Sqlite.Prefix, log)
}

// signalContext 收到 SIGINT/SIGTERM 时取消
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func sessionConfig() model.SessionConfig {
	return model.SessionConfig{
		DevToolsURL: cfg.Devtools.URL,
		Workers:     cfg.Loop.Workers,
		QueueSize:   cfg.Loop.QueueSize,
		Routes:      cfg.Routes,

		ProcessTimeoutMS: cfg.Loop.ProcessTimeoutMS,
	}
}

// startSession 创建会话、加载脚本，watch 时在后台监听脚本变更
func startSession(ctx context.Context, svc *service.Service, scriptPath string, watch bool) (model.SessionID, error) {
	id, err := svc.StartSession(sessionConfig())
	if err != nil {
		return "", err
	}
	src, err := script.Read(scriptPath)
	if err != nil {
		return "", err
	}
	if err := svc.LoadScript(id, scriptPath, src); err != nil {
		return "", err
	}
	if watch {
		w, err := script.NewWatcher(scriptPath, func(name, src string) error {
			return svc.ReloadScript(id, name, src)
		}, log)
		if err != nil {
			return "", err
		}
		go w.Run(ctx)
	}
	return id, nil
}

// logEvents 把会话事件写入日志直到 ctx 结束
func logEvents(ctx context.Context, events <-chan model.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			log.Info("请求事件", "type", ev.Type, "scheme", ev.Scheme, "url", ev.URL, "status", ev.Status, "netError", ev.NetError, "reason", ev.Reason)
		}
	}
}
