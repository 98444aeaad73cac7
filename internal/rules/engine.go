// Package rules 将请求 URL 映射到 scheme 的路由规则
package rules

import (
	"regexp"
	"strings"
	"sync"
)

// 匹配模式
const (
	ModeGlob   = "glob"
	ModePrefix = "prefix"
	ModeExact  = "exact"
	ModeRegex  = "regex"
)

// Route 一条路由：匹配到的请求交给 Scheme 对应的处理器
type Route struct {
	ID       string   `yaml:"id" json:"id" mapstructure:"id"`
	Scheme   string   `yaml:"scheme" json:"scheme" mapstructure:"scheme"`
	Pattern  string   `yaml:"pattern" json:"pattern" mapstructure:"pattern"`
	Mode     string   `yaml:"mode" json:"mode" mapstructure:"mode"`
	Methods  []string `yaml:"methods,omitempty" json:"methods,omitempty" mapstructure:"methods"`
	Priority int      `yaml:"priority" json:"priority" mapstructure:"priority"`
}

type Engine struct {
	mu     sync.RWMutex
	routes []Route
}

func New(routes []Route) *Engine {
	e := &Engine{}
	e.Update(routes)
	return e
}

// Update 替换全部路由
func (e *Engine) Update(routes []Route) {
	cp := make([]Route, len(routes))
	copy(cp, routes)
	e.mu.Lock()
	e.routes = cp
	e.mu.Unlock()
}

// Routes 返回当前路由副本
func (e *Engine) Routes() []Route {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make([]Route, len(e.routes))
	copy(cp, e.routes)
	return cp
}

type Ctx struct {
	URL    string
	Method string
}

type Result struct {
	Route  Route
	Scheme string
}

// Eval 返回优先级最高的匹配路由，优先级相同时取先出现的
func (e *Engine) Eval(ctx Ctx) *Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var chosen *Route
	for i := range e.routes {
		r := &e.routes[i]
		if !matchRoute(ctx, r) {
			continue
		}
		if chosen == nil || r.Priority > chosen.Priority {
			chosen = r
		}
	}
	if chosen == nil {
		return nil
	}
	return &Result{Route: *chosen, Scheme: chosen.Scheme}
}

// Match 返回 URL 对应的 scheme
func (e *Engine) Match(url, method string) (string, bool) {
	res := e.Eval(Ctx{URL: url, Method: method})
	if res == nil {
		return "", false
	}
	return res.Scheme, true
}

func matchRoute(ctx Ctx, r *Route) bool {
	if len(r.Methods) > 0 && !matchMethod(ctx.Method, r.Methods) {
		return false
	}
	return matchURL(ctx.URL, r.Pattern, r.Mode)
}

func matchMethod(method string, values []string) bool {
	for _, v := range values {
		if strings.EqualFold(method, v) {
			return true
		}
	}
	return false
}

func matchURL(url, pattern, mode string) bool {
	switch mode {
	case ModePrefix:
		return strings.HasPrefix(url, pattern)
	case ModeRegex:
		return matchRegex(url, pattern)
	case ModeExact:
		return url == pattern
	default:
		return glob(url, pattern)
	}
}

// Validate 检查正则是否可编译
func Validate(r Route) error {
	if r.Mode == ModeRegex {
		_, err := regexCache.Get(r.Pattern)
		return err
	}
	return nil
}

func matchRegex(s, pattern string) bool {
	re, err := regexCache.Get(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// glob 仅支持 * 通配，可出现在任意位置
func glob(s, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return s == pattern
	}
	parts := strings.Split(pattern, "*")
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	last := parts[len(parts)-1]
	for _, p := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, p)
		if idx < 0 {
			return false
		}
		s = s[idx+len(p):]
	}
	return strings.HasSuffix(s, last)
}

type reCache struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}

var regexCache = &reCache{m: make(map[string]*regexp.Regexp)}

func (c *reCache) Get(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.m[pattern]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.m[pattern] = re
	c.mu.Unlock()
	return re, nil
}
