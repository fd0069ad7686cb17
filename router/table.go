package router

import (
	"strings"

	"github.com/strand-web/strand/handler"
	"github.com/strand-web/strand/http"
	"github.com/strand-web/strand/http/method"
	"github.com/strand-web/strand/kv"
)

// Table is the built-in Router implementation. Static paths resolve through a
// map lookup; patterns with ":name" segments are matched in registration
// order with path-variable extraction.
type Table struct {
	static  map[string]*tableEntry
	dynamic []*dynamicRoute
}

type tableEntry struct {
	handlers [method.Count + 1]handler.Factory
	links    []http.Link
}

type dynamicRoute struct {
	template template
	entry    *tableEntry
}

func NewTable() *Table {
	return &Table{static: make(map[string]*tableEntry)}
}

// Route registers a handler for the method and path pattern. Segments starting
// with ':' match any single path segment and surface as path variables.
func (t *Table) Route(m method.Method, path string, f handler.Factory) *Table {
	entry := t.entryOf(path)
	entry.handlers[m] = f
	entry.links = append(entry.links, http.Link{Method: m, Path: path})
	return t
}

// RouteFunc registers a plain buffered handler function.
func (t *Table) RouteFunc(m method.Method, path string, f handler.Func) *Table {
	return t.Route(m, path, f)
}

func (t *Table) Get(path string, f handler.Func) *Table {
	return t.RouteFunc(method.GET, path, f)
}

func (t *Table) Post(path string, f handler.Func) *Table {
	return t.RouteFunc(method.POST, path, f)
}

func (t *Table) Put(path string, f handler.Func) *Table {
	return t.RouteFunc(method.PUT, path, f)
}

func (t *Table) Delete(path string, f handler.Func) *Table {
	return t.RouteFunc(method.DELETE, path, f)
}

func (t *Table) entryOf(path string) *tableEntry {
	tpl, dynamic := parseTemplate(path)
	if !dynamic {
		entry, found := t.static[path]
		if !found {
			entry = new(tableEntry)
			t.static[path] = entry
		}

		return entry
	}

	for _, route := range t.dynamic {
		if route.template.raw == path {
			return route.entry
		}
	}

	entry := new(tableEntry)
	t.dynamic = append(t.dynamic, &dynamicRoute{template: tpl, entry: entry})
	return entry
}

func (t *Table) Find(m method.Method, path string) Endpoint {
	vars := kv.New()

	if entry, found := t.static[path]; found {
		return endpointOf(entry, m, vars)
	}

	for _, route := range t.dynamic {
		if route.template.match(path, vars) {
			return endpointOf(route.entry, m, vars)
		}

		vars.Clear()
	}

	return Endpoint{Variables: vars}
}

func endpointOf(entry *tableEntry, m method.Method, vars *kv.Storage) Endpoint {
	return Endpoint{
		Handler:    entry.handlers[m],
		Variables:  vars,
		Hyperlinks: entry.links,
	}
}

type segment struct {
	value string
	isVar bool
}

type template struct {
	raw      string
	segments []segment
}

func parseTemplate(path string) (tpl template, dynamic bool) {
	tpl.raw = path

	for _, part := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if strings.HasPrefix(part, ":") {
			tpl.segments = append(tpl.segments, segment{value: part[1:], isVar: true})
			dynamic = true
			continue
		}

		tpl.segments = append(tpl.segments, segment{value: part})
	}

	return tpl, dynamic
}

func (t template) match(path string, vars *kv.Storage) bool {
	rest := strings.TrimPrefix(path, "/")

	for i, seg := range t.segments {
		part := rest
		if slash := strings.IndexByte(rest, '/'); slash != -1 {
			part, rest = rest[:slash], rest[slash+1:]
		} else {
			rest = ""
		}

		if seg.isVar {
			if len(part) == 0 {
				return false
			}

			vars.Set(seg.value, part)
			continue
		}

		if part != seg.value {
			return false
		}

		if len(rest) == 0 && i+1 < len(t.segments) {
			return false
		}
	}

	return len(rest) == 0
}
