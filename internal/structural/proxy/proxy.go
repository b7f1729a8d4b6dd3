// Package proxy demonstrates the proxy pattern: a stand-in with the same
// interface as the server resource that answers reads from a cache and
// writes through to both.
package proxy

import (
	"fmt"
	"io"

	gocache "github.com/patrickmn/go-cache"

	"github.com/prateeksan/patterns/internal/log"
)

// Resource is the interface shared by the server resource and its proxy.
type Resource interface {
	Read(w io.Writer, query string) string
	Write(w io.Writer, data string)
}

// ServerResource is the real, presumed-slow resource.
type ServerResource struct {
	store map[string]string
}

// NewServerResource creates the backing resource.
func NewServerResource() *ServerResource {
	return &ServerResource{store: make(map[string]string)}
}

// Read fetches data from the server.
func (r *ServerResource) Read(w io.Writer, query string) string {
	fmt.Fprintln(w, "\tReading from ServerResource...")
	if data, ok := r.store[query]; ok {
		return data
	}
	return fmt.Sprintf("Server data for: %s", query)
}

// Write stores data on the server.
func (r *ServerResource) Write(w io.Writer, data string) {
	fmt.Fprintln(w, "\tWriting to ServerResource...")
	r.store[data] = data
}

// Proxy fronts the server resource with a read cache and write-through
// behavior. Clients use it exactly like the resource itself.
type Proxy struct {
	resource *ServerResource
	cache    *gocache.Cache
}

// NewProxy wraps a fresh server resource.
func NewProxy() *Proxy {
	return &Proxy{
		resource: NewServerResource(),
		cache:    gocache.New(gocache.NoExpiration, 0),
	}
}

// Read returns the cached result when one exists; otherwise it reads from
// the server and caches the result for next time.
func (p *Proxy) Read(w io.Writer, query string) string {
	if cached, ok := p.cache.Get(query); ok {
		log.Debug(log.CatCache, "proxy cache hit", "query", query)
		fmt.Fprintln(w, "\tReturning data from cache...")
		return cached.(string)
	}

	log.Debug(log.CatCache, "proxy cache miss", "query", query)
	fmt.Fprintln(w, "\tNo cached data found...")
	result := p.resource.Read(w, query)
	p.cache.Set(query, result, gocache.NoExpiration)

	fmt.Fprintln(w, "\tReturning data from server...")
	return result
}

// Write stores the data in the cache and passes it through to the server.
func (p *Proxy) Write(w io.Writer, data string) {
	fmt.Fprintln(w, "\tWriting to cache...")
	p.cache.Set(data, data, gocache.NoExpiration)
	p.resource.Write(w, data)
}

// CachedCount reports how many entries the proxy is holding.
func (p *Proxy) CachedCount() int {
	return p.cache.ItemCount()
}
