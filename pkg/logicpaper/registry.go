package logicpaper

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Strategy is a pure formatter for one data category. Implementations are
// stateless apart from locale parameters fixed at construction, so a single
// instance is safe for concurrent use across rows and templates.
type Strategy interface {
	// Name returns the strategy's canonical name for warnings and logs.
	Name() string

	// Format runs the value through the operation pipeline. It never
	// returns an error: problems degrade to a best-effort value and are
	// reported through Result.Warnings.
	Format(value interface{}, ops []string) Result
}

// StrategyRegistry resolves a directive's type key to a strategy and applies
// it. The single entry point for formatting one field value.
type StrategyRegistry interface {
	// Register binds a type key to a strategy.
	Register(typeKey string, strategy Strategy) error

	// Format applies the strategy registered for the directive's type.
	// Unknown types and strategy panics degrade to a passthrough string
	// conversion; formatting never aborts a render.
	Format(value interface{}, directive Directive) Result

	// Types returns all registered type keys, sorted.
	Types() []string
}

// registryEntry binds a strategy plus the sub-mode tokens some type keys
// prepend: "currency;USD" reaches the number strategy as
// ["currency", "USD"].
type registryEntry struct {
	strategy Strategy
	leading  []string
	// leadingOnlyWithOps suppresses the prepend for a bare type key, so a
	// blank directive's "default" type stays a plain passthrough.
	leadingOnlyWithOps bool
	// seesEmpty routes nil/blank values into the strategy instead of
	// short-circuiting to "". Logic needs to observe emptiness.
	seesEmpty bool
}

// DefaultStrategyRegistry is the standard StrategyRegistry implementation.
type DefaultStrategyRegistry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

// NewStrategyRegistry builds a registry with the full built-in strategy set,
// parameterized by the given locale provider. The default currency comes from
// the global configuration.
func NewStrategyRegistry(locale LocaleProvider) *DefaultStrategyRegistry {
	return NewStrategyRegistryWithCurrency(locale, GetGlobalConfig().DefaultCurrency)
}

// NewStrategyRegistryWithCurrency is NewStrategyRegistry with an explicit
// default currency code.
func NewStrategyRegistryWithCurrency(locale LocaleProvider, defaultCurrency string) *DefaultStrategyRegistry {
	r := &DefaultStrategyRegistry{entries: make(map[string]registryEntry)}

	str := NewStringStrategy()
	num := NewNumberStrategy(locale, defaultCurrency)
	date := NewDateStrategy(locale)
	boolean := NewBooleanStrategy()
	logic := NewLogicStrategy()
	mask := NewMaskStrategy()
	image := NewImageStrategy()

	r.register("string", registryEntry{strategy: str})
	r.register("number", registryEntry{strategy: num})
	r.register("int", registryEntry{strategy: num, leading: []string{"int"}})
	r.register("float", registryEntry{strategy: num, leading: []string{"float"}})
	r.register("currency", registryEntry{strategy: num, leading: []string{"currency"}})
	r.register("percent", registryEntry{strategy: num, leading: []string{"percent"}})
	r.register("date", registryEntry{strategy: date})
	r.register("time", registryEntry{strategy: date})
	r.register("bool", registryEntry{strategy: boolean})
	r.register("logic", registryEntry{strategy: logic, seesEmpty: true})
	r.register(DefaultType, registryEntry{
		strategy:           logic,
		leading:            []string{"default"},
		leadingOnlyWithOps: true,
		seesEmpty:          true,
	})
	r.register("mask", registryEntry{strategy: mask})
	r.register("image", registryEntry{strategy: image})

	return r
}

func (r *DefaultStrategyRegistry) register(typeKey string, entry registryEntry) {
	r.entries[typeKey] = entry
}

// Register binds a custom strategy to a type key, replacing any builtin.
func (r *DefaultStrategyRegistry) Register(typeKey string, strategy Strategy) error {
	typeKey = strings.ToLower(strings.TrimSpace(typeKey))
	if typeKey == "" {
		return fmt.Errorf("type key cannot be empty")
	}
	if strategy == nil {
		return fmt.Errorf("strategy cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[typeKey] = registryEntry{strategy: strategy}
	return nil
}

// Types returns all registered type keys, sorted.
func (r *DefaultStrategyRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Format applies the strategy registered for directive.Type to value.
func (r *DefaultStrategyRegistry) Format(value interface{}, directive Directive) (result Result) {
	r.mu.RLock()
	entry, ok := r.entries[directive.Type]
	r.mu.RUnlock()

	if !ok {
		w := warnf("registry", directive.Type, "unknown type, passing value through")
		GetLogger().Warn("%s", w)
		return Result{Value: Stringify(value), Warnings: []Warning{w}}
	}

	// A strategy must never take down a document render.
	defer func() {
		if rec := recover(); rec != nil {
			w := warnf(entry.strategy.Name(), directive.Type, "recovered: %v", RecoverError(rec))
			GetLogger().Error("%s", w)
			result = Result{Value: Stringify(value), Warnings: []Warning{w}}
		}
	}()

	if !entry.seesEmpty && isBlank(value) {
		return okResult("")
	}

	ops := directive.Ops
	if len(entry.leading) > 0 && (len(ops) > 0 || !entry.leadingOnlyWithOps) {
		ops = append(append([]string{}, entry.leading...), ops...)
	}

	result = entry.strategy.Format(value, ops)
	for _, w := range result.Warnings {
		GetLogger().Warn("%s", w)
	}
	return result
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
