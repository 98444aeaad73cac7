package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"schemebridge/internal/service"
	"schemebridge/pkg/model"

	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveScheme  string
	serveStatic  string
	serveScript  string
	serveWatch   bool
	serveTarget  string
	serveDevtool string
)

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "以 HTTP 服务器为引擎运行处理器脚本",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		db, err := openDB()
		if err != nil {
			return err
		}
		svc := service.New(db, log)
		defer svc.Close()

		id, err := startSession(ctx, svc, scriptPath(), watchEnabled(cmd))
		if err != nil {
			return err
		}
		var fallback http.Handler
		if serveStatic != "" {
			fallback = http.FileServer(http.Dir(serveStatic))
		}
		h, err := svc.HTTPHandler(id, serveScheme, fallback)
		if err != nil {
			return err
		}
		events, _ := svc.SubscribeEvents(id)
		go logEvents(ctx, events)

		addr := serveAddr
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()
		log.Info("HTTP 引擎已启动", "addr", addr, "session", string(id))

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

var serveCDPCmd = &cobra.Command{
	Use:   "serve-cdp",
	Short: "通过 DevTools 协议拦截浏览器请求并交给处理器脚本",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		if serveDevtool != "" {
			cfg.Devtools.URL = serveDevtool
		}
		if serveTarget != "" {
			cfg.Devtools.Target = serveTarget
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		svc := service.New(db, log)
		defer svc.Close()

		id, err := startSession(ctx, svc, scriptPath(), watchEnabled(cmd))
		if err != nil {
			return err
		}
		target, err := svc.AttachTarget(id, model.TargetID(cfg.Devtools.Target))
		if err != nil {
			return err
		}
		if err := svc.EnableInterception(id); err != nil {
			return err
		}
		events, _ := svc.SubscribeEvents(id)
		log.Info("CDP 引擎已启动", "devtools", cfg.Devtools.URL, "target", string(target), "session", string(id))
		logEvents(ctx, events)
		return nil
	},
}

func scriptPath() string {
	if serveScript != "" {
		return serveScript
	}
	return cfg.Script.Path
}

func watchEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("watch") {
		return serveWatch
	}
	return cfg.Script.Watch
}

func init() {
	for _, c := range []*cobra.Command{serveHTTPCmd, serveCDPCmd} {
		c.Flags().StringVar(&serveScript, "script", "", "处理器脚本路径，默认取配置 script.path")
		c.Flags().BoolVar(&serveWatch, "watch", false, "脚本变更后自动重新加载")
	}
	serveHTTPCmd.Flags().StringVar(&serveAddr, "addr", "", "监听地址，默认取配置 http.addr")
	serveHTTPCmd.Flags().StringVar(&serveScheme, "scheme", "", "路由未命中时使用的 scheme，默认取请求 URL 的 scheme")
	serveHTTPCmd.Flags().StringVar(&serveStatic, "static", "", "未拦截请求回退到的静态文件目录")
	serveCDPCmd.Flags().StringVar(&serveDevtool, "devtools", "", "DevTools 地址，默认取配置 devtools.url")
	serveCDPCmd.Flags().StringVar(&serveTarget, "target", "", "目标 ID，为空时选择第一个页面")
}
