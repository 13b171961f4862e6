package custom

import (
	"context"
	"net/http"

	"github.com/AvaAvarai/IndimensionalYoutube/internal/cache"
	"github.com/AvaAvarai/IndimensionalYoutube/network"
	lua "github.com/yuin/gopher-lua"
)

// registerTLSClient exposes the http_tls module:
//
//	http_tls.get(url [, headers])   -> body
//	http_tls.request(options)       -> { status, body }
//
// request options are method, url, headers, body and cache. With cache = true
// successful responses are kept in the on-disk HTTP cache.
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(httpTLSGet))
	L.SetField(mod, "request", L.NewFunction(httpTLSRequest))
	L.SetGlobal("http_tls", mod)
}

func headersFrom(table *lua.LTable) map[string]string {
	headers := make(map[string]string)
	if table == nil {
		return headers
	}

	table.ForEach(func(k, v lua.LValue) {
		headers[k.String()] = v.String()
	})
	return headers
}

func httpTLSGet(L *lua.LState) int {
	url := L.CheckString(1)
	headers := headersFrom(L.OptTable(2, nil))

	resp, err := network.Fetch(context.Background(), network.Default(), http.MethodGet, url, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}

	L.Push(lua.LString(resp.Body))
	return 1
}

type cachedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func httpTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	method := stringField(opts, "method", http.MethodGet)
	url := stringField(opts, "url", "")
	body := stringField(opts, "body", "")
	useCache := lua.LVAsBool(opts.RawGetString("cache"))

	if url == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	var headers map[string]string
	if tbl, ok := opts.RawGetString("headers").(*lua.LTable); ok {
		headers = headersFrom(tbl)
	}

	push := func(status int, body string) int {
		result := L.NewTable()
		L.SetField(result, "status", lua.LNumber(status))
		L.SetField(result, "body", lua.LString(body))
		L.Push(result)
		return 1
	}

	cacheKey := cache.GenerateKey(method, url, body)
	if useCache {
		var entry cachedResponse
		if cache.Read(cacheKey, &entry) {
			return push(entry.Status, entry.Body)
		}
	}

	resp, err := network.Fetch(context.Background(), network.Default(), method, url, headers, body)
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	if useCache && resp.Status == http.StatusOK {
		_ = cache.Write(cacheKey, cachedResponse{Status: resp.Status, Body: resp.Body})
	}

	return push(resp.Status, resp.Body)
}

func stringField(tbl *lua.LTable, key, def string) string {
	val := tbl.RawGetString(key)
	if val == lua.LNil {
		return def
	}
	return val.String()
}
