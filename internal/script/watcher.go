// Package script 处理器脚本的读取与热加载
package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"schemebridge/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc 脚本内容变更后的回调
type ReloadFunc func(name, src string) error

// Read 读取脚本文件
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取脚本失败: %w", err)
	}
	return string(data), nil
}

// Watcher 监听脚本文件所在目录，文件写入或重建后去抖并重新加载
type Watcher struct {
	path     string
	reload   ReloadFunc
	log      logger.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher 创建监听器，需调用 Run 开始监听
func NewWatcher(path string, reload ReloadFunc, l logger.Logger) (*Watcher, error) {
	if l == nil {
		l = logger.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// 监听目录，编辑器保存时常常先删除再重建文件
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	return &Watcher{
		path:     path,
		reload:   reload,
		log:      l,
		debounce: 100 * time.Millisecond,
		watcher:  fw,
	}, nil
}

// Run 阻塞直到 ctx 结束
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.fire)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Err(err, "脚本监听出错", "path", w.path)
		}
	}
}

func (w *Watcher) fire() {
	src, err := Read(w.path)
	if err != nil {
		w.log.Err(err, "重新加载脚本失败", "path", w.path)
		return
	}
	if err := w.reload(filepath.Base(w.path), src); err != nil {
		w.log.Err(err, "重新加载脚本失败", "path", w.path)
		return
	}
	w.log.Info("脚本已重新加载", "path", w.path)
}
