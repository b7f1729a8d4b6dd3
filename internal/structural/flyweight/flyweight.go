// Package flyweight demonstrates the flyweight pattern: historical query
// results are memory-heavy and immutable, so one shared cache hands the
// same result object to every request that needs it.
package flyweight

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	gocache "github.com/patrickmn/go-cache"

	"github.com/prateeksan/patterns/internal/log"
)

// Query is a executed query holding its result data.
type Query struct {
	QueryString string
	Data        string
}

// NewFreshQuery executes a query against live data. Fresh results are never
// shared.
func NewFreshQuery(queryString string) *Query {
	return &Query{
		QueryString: queryString,
		Data:        fmt.Sprintf("Data for FreshQuery: %s", queryString),
	}
}

// newHistoricalQuery executes a query against the archive. Only the cache
// constructs these; everyone else shares its copies.
func newHistoricalQuery(queryString string) *Query {
	return &Query{
		QueryString: queryString,
		Data:        fmt.Sprintf("Data for HistoricalQuery: %s", queryString),
	}
}

// HistoricalDataCache is the flyweight store: at most one HistoricalQuery
// lives in memory per distinct query string.
type HistoricalDataCache struct {
	cache *gocache.Cache
}

// NewHistoricalDataCache creates an empty cache. Historical data never goes
// stale, so entries do not expire.
func NewHistoricalDataCache() *HistoricalDataCache {
	return &HistoricalDataCache{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Get returns the shared query result for the query string, executing and
// caching it on first sight.
func (c *HistoricalDataCache) Get(w io.Writer, queryString string) *Query {
	fmt.Fprintf(w, "Checking cache for: %s\n", queryString)

	key := queryHash(queryString)
	if cached, ok := c.cache.Get(key); ok {
		log.Debug(log.CatCache, "historical cache hit", "query", queryString)
		fmt.Fprintln(w, "\tCached result found. Returning result from cache.")
		return cached.(*Query)
	}

	log.Debug(log.CatCache, "historical cache miss", "query", queryString)
	fmt.Fprintln(w, "\tQuery result not previously cached. Caching and returning.")
	query := newHistoricalQuery(queryString)
	c.cache.Set(key, query, gocache.NoExpiration)
	return query
}

// Len reports how many distinct query results are cached.
func (c *HistoricalDataCache) Len() int {
	return c.cache.ItemCount()
}

func queryHash(queryString string) string {
	sum := sha256.Sum256([]byte(queryString))
	return hex.EncodeToString(sum[:])
}

// ComplexRequest merges fresh per-request data with shared historical data.
type ComplexRequest struct {
	HistoricalQueries []string
	FreshQueries      []string
	cache             *HistoricalDataCache
}

// NewComplexRequest builds a request backed by the shared historical cache.
func NewComplexRequest(historical, fresh []string, cache *HistoricalDataCache) *ComplexRequest {
	return &ComplexRequest{
		HistoricalQueries: historical,
		FreshQueries:      fresh,
		cache:             cache,
	}
}

// Get executes the request: fresh queries run every time, historical
// queries come from the flyweight cache, and the results are merged.
func (r *ComplexRequest) Get(w io.Writer) []string {
	var merged []string
	for _, queryString := range r.FreshQueries {
		merged = append(merged, NewFreshQuery(queryString).Data)
	}
	for _, queryString := range r.HistoricalQueries {
		merged = append(merged, r.cache.Get(w, queryString).Data)
	}

	fmt.Fprintln(w, "Merging the following data sets:")
	for _, data := range merged {
		fmt.Fprintf(w, "\t%s\n", data)
	}
	return merged
}
