package allegro

import (
	"fmt"
	"strings"
)

// buildIndexes derives the (refdes, pin) lookup maps from the finalized net
// table. It is a pure function of doc.Nets and can be called again whenever
// the table changes; the previous maps and the refdes trace cache are
// replaced. Nodes lacking a refdes or pin are skipped silently.
func (doc *Document) buildIndexes() {
	doc.pinNames = make(map[NodeKey]string)
	doc.netNames = make(map[NodeKey]string)
	doc.traces = make(map[string][]TraceEntry)

	for _, net := range doc.Nets {
		for _, node := range net.Nodes {
			if node.Refdes == "" || node.Pin == "" {
				continue
			}
			key := NodeKey{Refdes: node.Refdes, Pin: node.Pin}
			if node.HasPinName {
				doc.pinNames[key] = node.PinName
			}
			doc.netNames[key] = net.Name
		}
	}
}

// PinName returns the pin label recorded for the given refdes and pin. The
// lookup is O(1); absence means the pair never appeared with a captured pin
// name.
func (doc *Document) PinName(refdes, pin string) (string, bool) {
	name, ok := doc.pinNames[NodeKey{Refdes: refdes, Pin: pin}]
	return name, ok
}

// NetNameFor returns the net owning the given refdes and pin. O(1).
func (doc *Document) NetNameFor(refdes, pin string) (string, bool) {
	name, ok := doc.netNames[NodeKey{Refdes: refdes, Pin: pin}]
	return name, ok
}

// Trace returns every (net, pin) occurrence of refdes across the net table.
// The first call for a refdes scans the table once and caches the result, so
// repeated queries are O(1). A refdes absent from the table is reported once
// through the session logger, naming the source file.
func (doc *Document) Trace(refdes string) ([]TraceEntry, bool) {
	if doc.traces == nil {
		doc.traces = make(map[string][]TraceEntry)
	}
	if entries, ok := doc.traces[refdes]; ok {
		return entries, len(entries) > 0
	}

	var entries []TraceEntry
	for _, net := range doc.Nets {
		for _, node := range net.Nodes {
			if node.Refdes == refdes {
				entries = append(entries, TraceEntry{Net: net.Name, Pin: node.Pin})
			}
		}
	}
	doc.traces[refdes] = entries

	if len(entries) == 0 {
		if doc.logger != nil {
			doc.logger.Errorf("cannot find refdes %q in netlist: %s", refdes, doc.Source)
		}
		return nil, false
	}
	return entries, true
}

// TraceString renders a refdes trace as "REFDES net1:pin1 net2:pin2".
func (doc *Document) TraceString(refdes string) (string, bool) {
	entries, ok := doc.Trace(refdes)
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.WriteString(refdes)
	for _, e := range entries {
		fmt.Fprintf(&b, " %s:%s", e.Net, e.Pin)
	}
	return b.String(), true
}
