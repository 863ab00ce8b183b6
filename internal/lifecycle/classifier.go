package lifecycle

import (
	"errors"
	"log"

	"droidlens/internal/hierarchy"
)

// ErrNilMethod reports a nil method handle passed to an entry-point
// query. That is a caller bug, not an analysis outcome.
var ErrNilMethod = errors.New("lifecycle: nil method")

// ClassResolver resolves a fully qualified class name to its handle in
// the analyzed hierarchy, or nil if the type is not present.
type ClassResolver interface {
	ClassByName(name string) *hierarchy.Class
}

// SubtypeOracle answers whether a value of type sub can be stored where
// type sup is expected. It must reflect a finalized, immutable
// hierarchy.
type SubtypeOracle interface {
	CanStoreType(sub, sup *hierarchy.Class) bool
}

type rule struct {
	component ComponentType
	base      *hierarchy.Class
}

// Classifier assigns component roles to classes and answers lifecycle
// entry-point queries. Each instance owns its classification cache;
// results are memoized per class and never invalidated, so a Classifier
// must outlive a single hierarchy state. The cache is not safe for
// concurrent mutation; populate it from one goroutine, after which
// read-only use from many is fine.
type Classifier struct {
	oracle      SubtypeOracle
	rules       []rule
	application *hierarchy.Class
	tables      MethodTables
	cache       map[*hierarchy.Class]ComponentType
}

// NewClassifier resolves the well-known framework base classes against
// the given hierarchy and builds the classification rule list. Base
// classes missing from the hierarchy are skipped: their rules can never
// match, which is a capability gap of the analyzed framework version,
// not an error. A nil oracle degrades every classification to Plain.
//
// tables may be nil, in which case the built-in lifecycle tables are
// used.
func NewClassifier(resolver ClassResolver, oracle SubtypeOracle, tables MethodTables) *Classifier {
	if tables == nil {
		tables = DefaultMethodTables()
	}

	c := &Classifier{
		oracle: oracle,
		tables: tables,
		cache:  make(map[*hierarchy.Class]ComponentType),
	}

	if resolver == nil {
		return c
	}

	c.application = resolver.ClassByName(ApplicationClass)

	// Ordered by precedence; first match wins. The three fragment
	// variants collapse to one role, and the legacy MapActivity base
	// collapses to Activity.
	candidates := []struct {
		component ComponentType
		className string
	}{
		{ComponentApplication, ApplicationClass},
		{ComponentActivity, ActivityClass},
		{ComponentService, ServiceClass},
		{ComponentFragment, FragmentClass},
		{ComponentFragment, SupportFragmentClass},
		{ComponentFragment, AndroidXFragmentClass},
		{ComponentBroadcastReceiver, BroadcastReceiverClass},
		{ComponentContentProvider, ContentProviderClass},
		{ComponentGCMBaseIntentService, GCMBaseIntentServiceClass},
		{ComponentGCMListenerService, GCMListenerServiceClass},
		{ComponentServiceConnection, ServiceConnectionInterface},
		{ComponentActivity, MapActivityClass},
	}
	for _, cand := range candidates {
		if base := resolver.ClassByName(cand.className); base != nil {
			c.rules = append(c.rules, rule{component: cand.component, base: base})
		}
	}

	return c
}

// ComponentTypeOf returns the component role of the given class. The
// first call per class walks the rule list; repeated calls hit the
// cache and never re-query the oracle.
func (c *Classifier) ComponentTypeOf(class *hierarchy.Class) ComponentType {
	if ctype, ok := c.cache[class]; ok {
		return ctype
	}

	ctype := ComponentPlain
	if c.oracle == nil {
		log.Printf("warning: no type hierarchy available, assuming %s is a plain class", class.Name)
	} else {
		for _, r := range c.rules {
			if c.oracle.CanStoreType(class, r.base) {
				ctype = r.component
				break
			}
		}
	}

	c.cache[class] = ctype
	return ctype
}

// IsApplicationClass reports whether class derives from
// android.app.Application. It agrees with ComponentTypeOf for every
// class, including in degraded mode.
func (c *Classifier) IsApplicationClass(class *hierarchy.Class) bool {
	return c.application != nil && c.oracle != nil &&
		c.oracle.CanStoreType(class, c.application)
}

// IsEntryPointMethod reports whether the given method is a lifecycle
// method the framework calls back into. A nil method is a contract
// violation and returns ErrNilMethod.
func (c *Classifier) IsEntryPointMethod(m *hierarchy.Method) (bool, error) {
	if m == nil {
		return false, ErrNilMethod
	}

	ctype := c.ComponentTypeOf(m.Class)
	table, ok := c.tables[ctype]
	if !ok {
		// Application and Plain carry no entry-point table.
		return false, nil
	}
	return table.Contains(m.SubSignature()), nil
}
