package demo

import (
	"github.com/prateeksan/patterns/internal/behavioural/chain"
	"github.com/prateeksan/patterns/internal/behavioural/command"
	"github.com/prateeksan/patterns/internal/behavioural/mediator"
	"github.com/prateeksan/patterns/internal/behavioural/memento"
	"github.com/prateeksan/patterns/internal/behavioural/observer"
	"github.com/prateeksan/patterns/internal/behavioural/registry"
	"github.com/prateeksan/patterns/internal/behavioural/state"
	"github.com/prateeksan/patterns/internal/behavioural/strategy"
	"github.com/prateeksan/patterns/internal/creational/borg"
	"github.com/prateeksan/patterns/internal/creational/builder"
	"github.com/prateeksan/patterns/internal/creational/factory"
	"github.com/prateeksan/patterns/internal/creational/pool"
	"github.com/prateeksan/patterns/internal/creational/prototype"
	"github.com/prateeksan/patterns/internal/creational/singleton"
	"github.com/prateeksan/patterns/internal/structural/adapter"
	"github.com/prateeksan/patterns/internal/structural/composite"
	"github.com/prateeksan/patterns/internal/structural/decorator"
	"github.com/prateeksan/patterns/internal/structural/facade"
	"github.com/prateeksan/patterns/internal/structural/flyweight"
	"github.com/prateeksan/patterns/internal/structural/proxy"
)

// CatalogOptions carries the tunables some demos read from configuration.
type CatalogOptions struct {
	PoolLimit   int
	MementoMax  int
	FactorySeed int64
}

// DefaultCatalogOptions returns the options the demos were written against.
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		PoolLimit:   pool.Limit,
		MementoMax:  memento.DefaultMaxLength,
		FactorySeed: factory.DefaultSeed,
	}
}

// NewCatalog builds the full registry of pattern demonstrations.
func NewCatalog(opts CatalogOptions) (*Registry, error) {
	r := NewRegistry()

	entries := []*Entry{
		{
			Name:        "chain-of-responsibility",
			Category:    CategoryBehavioural,
			Description: "Candidate-search pools pass unmatched requests down the chain.",
			Run:         chain.Demo,
		},
		{
			Name:        "command",
			Category:    CategoryBehavioural,
			Description: "Database migrations as command objects with run and rollback.",
			Run:         command.Demo,
		},
		{
			Name:        "mediator",
			Category:    CategoryBehavioural,
			Description: "Network nodes toggled through a central mediator.",
			Run:         mediator.Demo,
		},
		{
			Name:        "memento",
			Category:    CategoryBehavioural,
			Description: "Map builder with checkpoints and bounded revert history.",
			Run:         memento.Demo(opts.MementoMax),
		},
		{
			Name:        "observer",
			Category:    CategoryBehavioural,
			Description: "Forum bots notified of every new post.",
			Run:         observer.Demo,
		},
		{
			Name:        "registry",
			Category:    CategoryBehavioural,
			Description: "Central record of error kinds keyed by code.",
			Run:         registry.Demo,
		},
		{
			Name:        "state",
			Category:    CategoryBehavioural,
			Description: "TV remote whose button behavior depends on the current state.",
			Run:         state.Demo,
		},
		{
			Name:        "strategy",
			Category:    CategoryBehavioural,
			Description: "Tree searches with swappable traversal algorithms.",
			Run:         strategy.Demo,
		},
		{
			Name:        "borg",
			Category:    CategoryCreational,
			Description: "Distinct instances sharing one state.",
			Run:         borg.Demo,
		},
		{
			Name:        "builder",
			Category:    CategoryCreational,
			Description: "Director drives meal builders through fixed build steps.",
			Run:         builder.Demo,
		},
		{
			Name:        "factory",
			Category:    CategoryCreational,
			Description: "Children of a common parent constructed by kind name.",
			Run:         factory.Demo(opts.FactorySeed),
		},
		{
			Name:        "pool",
			Category:    CategoryCreational,
			Description: "Reusable worker pool with activation and safe resizing.",
			Run:         pool.Demo(opts.PoolLimit),
		},
		{
			Name:        "prototype",
			Category:    CategoryCreational,
			Description: "Report cards cloned from one costly breeder per year.",
			Run:         prototype.Demo,
		},
		{
			Name:        "singleton",
			Category:    CategoryCreational,
			Description: "One process-wide settings instance via sync.Once.",
			Run:         singleton.Demo,
		},
		{
			Name:        "adapter",
			Category:    CategoryStructural,
			Description: "Mixed resource interfaces homogenized behind one reader.",
			Run:         adapter.Demo,
		},
		{
			Name:        "composite",
			Category:    CategoryStructural,
			Description: "Leaves and composites read uniformly as a tree.",
			Run:         composite.Demo,
		},
		{
			Name:        "decorator",
			Category:    CategoryStructural,
			Description: "Validators wrapped around form handlers middleware-style.",
			Run:         decorator.Demo,
		},
		{
			Name:        "facade",
			Category:    CategoryStructural,
			Description: "Campaign dashboard hiding the team APIs behind two calls.",
			Run:         facade.Demo,
		},
		{
			Name:        "flyweight",
			Category:    CategoryStructural,
			Description: "Historical query results shared through one cache.",
			Run:         flyweight.Demo,
		},
		{
			Name:        "proxy",
			Category:    CategoryStructural,
			Description: "Caching stand-in with the server resource's interface.",
			Run:         proxy.Demo,
		},
	}

	for _, entry := range entries {
		if err := r.Add(entry); err != nil {
			return nil, err
		}
	}
	return r, nil
}
