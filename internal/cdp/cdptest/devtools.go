// Package cdptest 提供测试用的 DevTools 端点：一个页面目标，应答所有命令并可推送事件
package cdptest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// TargetID 唯一页面目标的 ID
const TargetID = "stub-page"

// Call 收到的一条命令
type Call struct {
	Method string
	Params string // 原始 JSON
}

// DevTools 模拟的调试端点，URL 可直接作为 DevTools 地址
type DevTools struct {
	URL string

	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu    sync.Mutex
	ws    *websocket.Conn
	calls []Call
}

// NewDevTools 启动端点
func NewDevTools() *DevTools {
	d := &DevTools{}
	mux := http.NewServeMux()
	mux.HandleFunc("/json/version", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Browser":"cdptest"}`)
	})
	mux.HandleFunc("/json/list", d.serveList)
	mux.HandleFunc("/devtools/page/"+TargetID, d.serveTarget)
	d.srv = httptest.NewServer(mux)
	d.URL = d.srv.URL
	return d
}

// Close 断开连接并关闭端点
func (d *DevTools) Close() {
	d.Drop()
	d.srv.Close()
}

func (d *DevTools) serveList(w http.ResponseWriter, r *http.Request) {
	ws := "ws" + strings.TrimPrefix(d.srv.URL, "http") + "/devtools/page/" + TargetID
	fmt.Fprintf(w, `[{"id":%q,"type":"page","title":"cdptest","url":"https://cdptest.local/","webSocketDebuggerUrl":%q}]`, TargetID, ws)
}

func (d *DevTools) serveTarget(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	d.mu.Lock()
	d.ws = conn
	d.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		id := gjson.GetBytes(data, "id").Int()

		d.mu.Lock()
		d.calls = append(d.calls, Call{
			Method: gjson.GetBytes(data, "method").String(),
			Params: gjson.GetBytes(data, "params").Raw,
		})
		err = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf(`{"id":%d,"result":{}}`, id)))
		d.mu.Unlock()
		if err != nil {
			return
		}
	}
}

// Count 某个命令收到的次数
func (d *DevTools) Count(method string) int {
	return len(d.Calls(method))
}

// Calls 某个命令每次收到的参数
func (d *DevTools) Calls(method string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, c := range d.calls {
		if c.Method == method {
			out = append(out, c.Params)
		}
	}
	return out
}

// Pause 推送一条 Fetch.requestPaused 事件
func (d *DevTools) Pause(requestID, url string) error {
	params := `{"frameId":"F1","resourceType":"Document","request":{"method":"GET","headers":{},"initialPriority":"High","referrerPolicy":"no-referrer"}}`
	params, _ = sjson.Set(params, "requestId", requestID)
	params, _ = sjson.Set(params, "request.url", url)
	msg, _ := sjson.SetRaw(`{"method":"Fetch.requestPaused"}`, "params", params)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ws == nil {
		return errors.New("cdptest: target not connected")
	}
	return d.ws.WriteMessage(websocket.TextMessage, []byte(msg))
}

// Drop 不发关闭帧直接断开页面连接，模拟浏览器关闭标签页
func (d *DevTools) Drop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ws != nil {
		d.ws.Close()
		d.ws = nil
	}
}
