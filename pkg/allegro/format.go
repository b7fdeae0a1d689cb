package allegro

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const titleRule = "+-------------------------------------------------------------------------+"

// Len returns the number of nets in the table.
func (doc *Document) Len() int {
	return len(doc.Nets)
}

func (doc *Document) checkIndex(i int) error {
	if i < 0 || i >= len(doc.Nets) {
		return fmt.Errorf("%w: %d (valid range: 0 to %d)", ErrIndexOutOfRange, i, len(doc.Nets)-1)
	}
	return nil
}

// ParseIndex converts a textual net index, distinguishing non-integer input
// (ErrInvalidIndex) from out-of-range values (ErrIndexOutOfRange).
func (doc *Document) ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	if err := doc.checkIndex(i); err != nil {
		return 0, err
	}
	return i, nil
}

// NetName returns the net name at index i.
func (doc *Document) NetName(i int) (string, error) {
	if err := doc.checkIndex(i); err != nil {
		return "", err
	}
	return doc.Nets[i].Name, nil
}

// NodeList returns the (refdes, pin) pairs of the net at index i. Pin names
// are dropped.
func (doc *Document) NodeList(i int) ([]NodeKey, error) {
	if err := doc.checkIndex(i); err != nil {
		return nil, err
	}
	nodes := doc.Nets[i].Nodes
	list := make([]NodeKey, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, NodeKey{Refdes: n.Refdes, Pin: n.Pin})
	}
	return list, nil
}

// NetString renders the net at index i as the net name followed by each
// node's refdes, pin and captured pin name, all space-joined.
func (doc *Document) NetString(i int) (string, error) {
	if err := doc.checkIndex(i); err != nil {
		return "", err
	}
	net := doc.Nets[i]
	parts := make([]string, 0, 1+3*len(net.Nodes))
	parts = append(parts, net.Name)
	for _, n := range net.Nodes {
		parts = append(parts, n.Refdes, n.Pin)
		if n.HasPinName {
			parts = append(parts, n.PinName)
		}
	}
	return strings.Join(parts, " "), nil
}

// Table renders the whole net table, one net per line.
func (doc *Document) Table() string {
	lines := make([]string, 0, len(doc.Nets))
	for i := range doc.Nets {
		s, err := doc.NetString(i)
		if err != nil {
			continue
		}
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n") + "\n"
}

// SingleNodeNets renders only the nets whose net string has fewer than five
// fields: a single attached node, usually the sign of an unconnected net.
// Returns "" when every net has more than one node.
func (doc *Document) SingleNodeNets() string {
	var lines []string
	for i := range doc.Nets {
		s, err := doc.NetString(i)
		if err != nil {
			continue
		}
		if len(strings.Fields(s)) < 5 {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Info returns the one-line summary used in report title blocks.
func (doc *Document) Info() string {
	return fmt.Sprintf("Netlist %s %s (version: %s)", doc.Date, doc.Time, doc.Version)
}

// Title renders the fixed-width report title block. now is the generation
// timestamp.
func (doc *Document) Title(now time.Time) string {
	lines := []string{
		titleRule,
		"| File contains Cadence PCB Editor netlist                                |",
		"| NOTE: this file was auto-generated                                      |",
		fmt.Sprintf("| generation date, time: %s                              |", now.Format("2006-01-02 15:04:05")),
		titleRule,
		"| Cadence Netlist file info:                                             |",
		fmt.Sprintf("|  %s", doc.Info()),
		fmt.Sprintf("|  %s", doc.Source),
		titleRule,
	}
	return strings.Join(lines, "\n")
}

// SingleNodeWarnings renders the warnings section listing single-node nets,
// or "- (Empty)" when there are none.
func (doc *Document) SingleNodeWarnings() string {
	lines := []string{
		"",
		"",
		"",
		titleRule,
		"| Warnings: Single node name                                              |",
		titleRule,
	}
	if w := doc.SingleNodeNets(); w == "" {
		lines = append(lines, "- (Empty)")
	} else {
		lines = append(lines, w)
	}
	return strings.Join(lines, "\n")
}

// Report renders the full report: title block, net table and single-node
// warnings.
func (doc *Document) Report(now time.Time) string {
	var b strings.Builder
	b.WriteString(doc.Title(now))
	b.WriteString("\n")
	b.WriteString(doc.Table())
	b.WriteString(doc.SingleNodeWarnings())
	b.WriteString("\n")
	return b.String()
}
