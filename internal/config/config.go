// Package config 加载 schemebridge 的配置文件与环境变量
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"schemebridge/internal/rules"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀，例如 SCHEMEBRIDGE_LOG_LEVEL
const EnvPrefix = "SCHEMEBRIDGE"

// Config 配置文件结构体
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	Sqlite   SqliteConfig   `yaml:"sqlite" mapstructure:"sqlite"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Devtools DevtoolsConfig `yaml:"devtools" mapstructure:"devtools"`
	HTTP     HTTPConfig     `yaml:"http" mapstructure:"http"`
	Script   ScriptConfig   `yaml:"script" mapstructure:"script"`
	Loop     LoopConfig     `yaml:"loop" mapstructure:"loop"`
	Routes   []rules.Route  `yaml:"routes" mapstructure:"routes"`
}

type SqliteConfig struct {
	Dsn    string `yaml:"dsn" mapstructure:"dsn"`
	Prefix string `yaml:"prefix" mapstructure:"prefix"`
}

type LogConfig struct {
	Level  string   `yaml:"level" mapstructure:"level"`
	Writer []string `yaml:"writer" mapstructure:"writer"`
	File   string   `yaml:"file" mapstructure:"file"`
}

// DevtoolsConfig CDP 调试端点
type DevtoolsConfig struct {
	URL    string `yaml:"url" mapstructure:"url"`
	Target string `yaml:"target" mapstructure:"target"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// ScriptConfig 处理器脚本，Watch 为 true 时文件变更后重新加载
type ScriptConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Watch bool   `yaml:"watch" mapstructure:"watch"`
}

// LoopConfig 脚本事件循环与分发池
type LoopConfig struct {
	QueueSize int `yaml:"queue_size" mapstructure:"queue_size"`
	Workers   int `yaml:"workers" mapstructure:"workers"`
	// 单个请求开始回调的超时，0 时 CDP 引擎取 3 秒，HTTP 引擎不限制
	ProcessTimeoutMS int `yaml:"process_timeout_ms" mapstructure:"process_timeout_ms"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Sqlite: SqliteConfig{
			Dsn:    "schemebridge.sqlite3",
			Prefix: "schemebridge_",
		},
		Log: LogConfig{
			Level:  "info",
			Writer: []string{"console"},
			File:   filepath.Join("logs", "schemebridge.log"),
		},
		Devtools: DevtoolsConfig{
			URL: "http://127.0.0.1:9222",
		},
		HTTP: HTTPConfig{
			Addr: "127.0.0.1:8080",
		},
		Script: ScriptConfig{
			Path: "handler.js",
		},
		Loop: LoopConfig{
			QueueSize: 256,
			Workers:   8,
		},
	}
}

// Load 按 默认值 < 配置文件 < 环境变量 的顺序合并配置，path 为空时只用默认值和环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("sqlite.dsn", d.Sqlite.Dsn)
	v.SetDefault("sqlite.prefix", d.Sqlite.Prefix)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.writer", d.Log.Writer)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("devtools.url", d.Devtools.URL)
	v.SetDefault("devtools.target", d.Devtools.Target)
	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("script.path", d.Script.Path)
	v.SetDefault("script.watch", d.Script.Watch)
	v.SetDefault("loop.queue_size", d.Loop.QueueSize)
	v.SetDefault("loop.workers", d.Loop.Workers)
	v.SetDefault("loop.process_timeout_ms", d.Loop.ProcessTimeoutMS)
	v.SetDefault("routes", []map[string]any{})
}

// Validate 校验路由与循环参数
func (c *Config) Validate() error {
	var errs []error
	if c.Loop.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("loop.queue_size 必须大于 0"))
	}
	if c.Loop.Workers <= 0 {
		errs = append(errs, fmt.Errorf("loop.workers 必须大于 0"))
	}
	if c.Loop.ProcessTimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("loop.process_timeout_ms 不能为负数"))
	}
	for i, r := range c.Routes {
		if r.Scheme == "" {
			errs = append(errs, fmt.Errorf("routes[%d]: scheme 不能为空", i))
		}
		if r.Pattern == "" {
			errs = append(errs, fmt.Errorf("routes[%d]: pattern 不能为空", i))
		}
		switch r.Mode {
		case "", rules.ModeGlob, rules.ModePrefix, rules.ModeExact, rules.ModeRegex:
		default:
			errs = append(errs, fmt.Errorf("routes[%d]: 未知的匹配模式 %q", i, r.Mode))
		}
		if err := rules.Validate(r); err != nil {
			errs = append(errs, fmt.Errorf("routes[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Write 将配置以 YAML 写入文件，文件已存在且 force 为 false 时返回 os.ErrExist
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, os.ErrExist)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
