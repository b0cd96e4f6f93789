// Package engine wires the merchant access-control subsystem together:
// alias resolution, permission store, runtime predicates and the sync
// channel, behind one object the dashboard's session layer drives.
//
// Typical lifecycle:
//
//	eng, err := engine.New(engine.Dependencies{
//	    Sections:  sectionRegistry,
//	    Merchants: merchantRegistry,
//	    Aliases:   aliasMap,
//	    Store:     store,
//	    Notifier:  notifier,
//	})
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	id, _ := eng.Activate(ctx, record) // resolve + load + subscribe
//	if eng.IsSectionAvailable("catalog-products") {
//	    // render the section
//	}
//
// Activation is per merchant context: re-activating with a different
// record tears down the previous sync subscription first, so exactly
// one subscription is live per context. Permission changes made by any
// consumer — this process or another — funnel into one reload path that
// re-reads the store, recovers the active section and collapses
// navigation groups that lost visibility.
package engine
