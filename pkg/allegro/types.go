package allegro

import "github.com/charmbracelet/log"

// Document holds the parsed contents of a Cadence Allegro expanded netlist
// (pstxnet.dat).
type Document struct {
	// Header metadata from the second line of the file. Fields keep their
	// zero value when the header could not be parsed.
	Version string
	Date    string
	Time    string

	// Nets is sorted by name once parsing completes. Duplicate net names are
	// kept as separate entries, never merged.
	Nets []Net

	// Source is the path or label of the parsed input, used in reports and
	// diagnostics.
	Source string

	// Derived lookup maps, built after the net table is finalized.
	pinNames map[NodeKey]string
	netNames map[NodeKey]string
	traces   map[string][]TraceEntry

	logger *log.Logger
}

// Net is one named electrical net and the component pins attached to it.
type Net struct {
	Name  string
	Nodes []Node
}

// Node is a single pin attachment: a component reference designator and a
// pin number, plus the pin label when the netlist carried one. A node keeps
// only refdes and pin when its net ended before the pin-name line.
type Node struct {
	Refdes     string
	Pin        string
	PinName    string
	HasPinName bool
}

// NodeKey identifies a component pin across the whole netlist.
type NodeKey struct {
	Refdes string
	Pin    string
}

// TraceEntry is one occurrence of a reference designator in the net table.
type TraceEntry struct {
	Net string
	Pin string
}
