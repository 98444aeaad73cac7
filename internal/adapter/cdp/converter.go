package cdp

import (
	"sort"
	"strings"

	"schemebridge/pkg/arkweb"

	"github.com/mafredri/cdp/protocol/fetch"
	"github.com/tidwall/gjson"
)

var resourceTypes = map[string]int32{
	"Document":   arkweb.ResourceTypeMainFrame,
	"Stylesheet": arkweb.ResourceTypeStylesheet,
	"Script":     arkweb.ResourceTypeScript,
	"Image":      arkweb.ResourceTypeImage,
	"Font":       arkweb.ResourceTypeFont,
	"Media":      arkweb.ResourceTypeMedia,
	"Prefetch":   arkweb.ResourceTypePrefetch,
	"XHR":        arkweb.ResourceTypeXHR,
	"Fetch":      arkweb.ResourceTypeXHR,
	"Ping":       arkweb.ResourceTypePing,
}

// ResourceType 将 CDP 资源类型映射为引擎资源类型，未知类型归为子资源
func ResourceType(t string) int32 {
	if v, ok := resourceTypes[t]; ok {
		return v
	}
	return arkweb.ResourceTypeSubResource
}

// ToResourceRequest 将 CDP 拦截事件转换为引擎请求
func ToResourceRequest(ev *fetch.RequestPausedReply) *arkweb.ResourceRequest {
	req := arkweb.NewResourceRequest()
	req.ID = string(ev.RequestID)
	req.URL = ev.Request.URL
	req.Method = ev.Request.Method
	req.ResourceType = ResourceType(string(ev.ResourceType))
	req.IsMainFrame = req.ResourceType == arkweb.ResourceTypeMainFrame
	req.Headers = ParseHeaders([]byte(ev.Request.Headers))
	for _, h := range req.Headers {
		if strings.EqualFold(h.Name, "referer") {
			req.Referrer = h.Value
			break
		}
	}
	return req
}

// ParseHeaders 解析 JSON 对象形式的请求头，按名称排序
func ParseHeaders(raw []byte) []arkweb.Header {
	if len(raw) == 0 {
		return nil
	}
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return nil
	}
	var out []arkweb.Header
	res.ForEach(func(k, v gjson.Result) bool {
		out = append(out, arkweb.Header{Name: k.String(), Value: v.String()})
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ToHeaderEntries 将响应头转换为 CDP Header 条目，按名称排序
func ToHeaderEntries(h map[string]string) []fetch.HeaderEntry {
	entries := make([]fetch.HeaderEntry, 0, len(h))
	for k, v := range h {
		entries = append(entries, fetch.HeaderEntry{Name: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// ToFulfillArgs 用引擎响应和已缓冲的响应体构造 fulfillRequest 参数
func ToFulfillArgs(id fetch.RequestID, resp *arkweb.Response, body []byte) *fetch.FulfillRequestArgs {
	status := 200
	headers := map[string]string{}
	var phrase *string
	if resp != nil {
		if resp.Status > 0 {
			status = int(resp.Status)
		}
		for k, v := range resp.Headers {
			headers[k] = v
		}
		if resp.MimeType != "" && !hasHeader(headers, "content-type") {
			ct := resp.MimeType
			if resp.Encoding != "" {
				ct += "; charset=" + resp.Encoding
			}
			headers["Content-Type"] = ct
		}
		if resp.StatusText != "" {
			text := resp.StatusText
			phrase = &text
		}
	}
	return &fetch.FulfillRequestArgs{
		RequestID:       id,
		ResponseCode:    status,
		ResponseHeaders: ToHeaderEntries(headers),
		ResponsePhrase:  phrase,
		Body:            body,
	}
}

func hasHeader(h map[string]string, name string) bool {
	for k := range h {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}
