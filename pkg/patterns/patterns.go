// Package patterns assembles the built-in catalog: every pattern
// demonstration in this module, registered under its slug and
// Gang-of-Four category.
package patterns

import (
	"fmt"

	"github.com/dukaforge/patternbook/pkg/catalog"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/chain"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/command"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/iterator"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/mediator"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/memento"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/observer"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/state"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/strategy"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/templatemethod"
	"github.com/dukaforge/patternbook/pkg/patterns/behavioral/visitor"
	"github.com/dukaforge/patternbook/pkg/patterns/creational/abstractfactory"
	"github.com/dukaforge/patternbook/pkg/patterns/creational/builder"
	"github.com/dukaforge/patternbook/pkg/patterns/creational/factorymethod"
	"github.com/dukaforge/patternbook/pkg/patterns/creational/prototype"
	"github.com/dukaforge/patternbook/pkg/patterns/creational/singleton"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/adapter"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/bridge"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/composite"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/decorator"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/facade"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/flyweight"
	"github.com/dukaforge/patternbook/pkg/patterns/structural/proxy"
)

// builtin lists every demonstration shipped with the module.
var builtin = []catalog.Entry{
	{
		Name:     "factory-method",
		Title:    "Factory Method",
		Category: catalog.CategoryCreational,
		Summary:  "Factories return derivatives through a shared interface, so callers never name the concrete product type.",
		Demo:     factorymethod.Demo,
	},
	{
		Name:     "abstract-factory",
		Title:    "Abstract Factory",
		Category: catalog.CategoryCreational,
		Summary:  "One factory produces a matched family of products (derivative plus market feed) that are guaranteed to work together.",
		Demo:     abstractfactory.Demo,
	},
	{
		Name:     "builder",
		Title:    "Builder",
		Category: catalog.CategoryCreational,
		Summary:  "A trading strategy is assembled step by step, with a director encoding the recipes for named presets.",
		Demo:     builder.Demo,
	},
	{
		Name:     "prototype",
		Title:    "Prototype",
		Category: catalog.CategoryCreational,
		Summary:  "New strategies are produced by deep-copying an existing one; edits to a clone never reach the source.",
		Demo:     prototype.Demo,
	},
	{
		Name:     "singleton",
		Title:    "Singleton",
		Category: catalog.CategoryCreational,
		Summary:  "A process-wide audit logger is materialized once behind sync.Once; every caller gets the same instance.",
		Demo:     singleton.Demo,
	},
	{
		Name:     "adapter",
		Title:    "Adapter",
		Category: catalog.CategoryStructural,
		Summary:  "A vendor trading API with an incompatible surface is wrapped so the system keeps talking to its own interface.",
		Demo:     adapter.Demo,
	},
	{
		Name:     "bridge",
		Title:    "Bridge",
		Category: catalog.CategoryStructural,
		Summary:  "The order-side abstraction varies independently of the venue it executes on.",
		Demo:     bridge.Demo,
	},
	{
		Name:     "composite",
		Title:    "Composite",
		Category: catalog.CategoryStructural,
		Summary:  "Holdings and nested portfolios expose one Value method, so part and whole are priced uniformly.",
		Demo:     composite.Demo,
	},
	{
		Name:     "decorator",
		Title:    "Decorator",
		Category: catalog.CategoryStructural,
		Summary:  "Risk haircuts, commissions, and tracing stack around an instrument without changing the instrument.",
		Demo:     decorator.Demo,
	},
	{
		Name:     "facade",
		Title:    "Facade",
		Category: catalog.CategoryStructural,
		Summary:  "One PlaceTrade call hides the market-data, risk, and order-management subsystems behind it.",
		Demo:     facade.Demo,
	},
	{
		Name:     "flyweight",
		Title:    "Flyweight",
		Category: catalog.CategoryStructural,
		Summary:  "Trade specs (side and symbol) are shared through a factory cache; per-execution state stays with the caller.",
		Demo:     flyweight.Demo,
	},
	{
		Name:     "proxy",
		Title:    "Proxy",
		Category: catalog.CategoryStructural,
		Summary:  "A caching proxy fronts a remote market-data feed and only fetches on a cache miss.",
		Demo:     proxy.Demo,
	},
	{
		Name:     "chain-of-responsibility",
		Title:    "Chain of Responsibility",
		Category: catalog.CategoryBehavioral,
		Summary:  "Trade approvals climb a manager, senior manager, director chain until a limit covers the amount.",
		Demo:     chain.Demo,
	},
	{
		Name:     "command",
		Title:    "Command",
		Category: catalog.CategoryBehavioral,
		Summary:  "Buy and sell requests are reified as objects a broker queues and executes without knowing what they do.",
		Demo:     command.Demo,
	},
	{
		Name:     "iterator",
		Title:    "Iterator",
		Category: catalog.CategoryBehavioral,
		Summary:  "A transaction ledger is traversed through a cursor without exposing its backing slice.",
		Demo:     iterator.Demo,
	},
	{
		Name:     "mediator",
		Title:    "Mediator",
		Category: catalog.CategoryBehavioral,
		Summary:  "Traders broadcast quotes through a dealing desk and never hold references to each other.",
		Demo:     mediator.Demo,
	},
	{
		Name:     "memento",
		Title:    "Memento",
		Category: catalog.CategoryBehavioral,
		Summary:  "An account snapshots its balance into opaque mementos a caretaker can restore for rollback.",
		Demo:     memento.Demo,
	},
	{
		Name:     "observer",
		Title:    "Observer",
		Category: catalog.CategoryBehavioral,
		Summary:  "A price feed notifies every attached display on each tick; displays come and go freely.",
		Demo:     observer.Demo,
	},
	{
		Name:     "state",
		Title:    "State",
		Category: catalog.CategoryBehavioral,
		Summary:  "An order's processing and cancelling behavior changes with its lifecycle stage, with no conditionals in the order.",
		Demo:     state.Demo,
	},
	{
		Name:     "strategy",
		Title:    "Strategy",
		Category: catalog.CategoryBehavioral,
		Summary:  "Settlement methods are interchangeable behind one Pay call and swappable at runtime.",
		Demo:     strategy.Demo,
	},
	{
		Name:     "template-method",
		Title:    "Template Method",
		Category: catalog.CategoryBehavioral,
		Summary:  "Report generation fixes the step order while each report type supplies its own steps.",
		Demo:     templatemethod.Demo,
	},
	{
		Name:     "visitor",
		Title:    "Visitor",
		Category: catalog.CategoryBehavioral,
		Summary:  "Tax calculation and reporting are added over stocks and bonds without touching the instrument types.",
		Demo:     visitor.Demo,
	},
}

// Builtin returns a registry holding all shipped demonstrations.
// Registration of the static entry set cannot fail at runtime; an
// error here is a programming mistake, so it panics.
func Builtin() *catalog.Registry {
	r := catalog.NewRegistry()
	for _, e := range builtin {
		if err := r.Register(e); err != nil {
			panic(fmt.Sprintf("registering builtin pattern %q: %v", e.Name, err))
		}
	}
	return r
}
