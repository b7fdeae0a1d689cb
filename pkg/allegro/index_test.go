package allegro

import (
	"reflect"
	"strings"
	"testing"
)

const indexNetlist = `FILE_TYPE = EXPANDEDNETLIST;
{ Using PSTWRITER 16.3.0 p002Mar-22-2016 at 10:54:51 }
NET_NAME
'DATA0'
NODE_NAME	U1 3
 '@CAPTURENAME.test':
 'DQ0':;
NODE_NAME	R5 1
 '@CAPTURENAME.test':
 'A':;
NET_NAME
'DATA1'
NODE_NAME	U1 4
 '@CAPTURENAME.test':
 'DQ1':;
NET_NAME
'NC'
NODE_NAME	R9 2
END.
`

func parseIndexFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(indexNetlist), "index.dat", Options{})
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return doc
}

func TestPinNameLookup(t *testing.T) {
	doc := parseIndexFixture(t)

	name, ok := doc.PinName("U1", "3")
	if !ok || name != "DQ0" {
		t.Errorf("PinName(U1, 3) = %q, %v; want DQ0, true", name, ok)
	}
	name, ok = doc.PinName("U1", "4")
	if !ok || name != "DQ1" {
		t.Errorf("PinName(U1, 4) = %q, %v; want DQ1, true", name, ok)
	}

	// R9's net ended before its pin-name line; the pair must not appear.
	if _, ok := doc.PinName("R9", "2"); ok {
		t.Error("PinName must not contain pairs without a captured pin name")
	}
	if _, ok := doc.PinName("U9", "1"); ok {
		t.Error("PinName must not contain pairs absent from the table")
	}
}

func TestNetNameLookup(t *testing.T) {
	doc := parseIndexFixture(t)

	net, ok := doc.NetNameFor("U1", "3")
	if !ok || net != "DATA0" {
		t.Errorf("NetNameFor(U1, 3) = %q, %v; want DATA0, true", net, ok)
	}

	// Pairs with refdes and pin but no pin name still map to their net.
	net, ok = doc.NetNameFor("R9", "2")
	if !ok || net != "NC" {
		t.Errorf("NetNameFor(R9, 2) = %q, %v; want NC, true", net, ok)
	}

	if _, ok := doc.NetNameFor("U9", "1"); ok {
		t.Error("NetNameFor must not contain pairs absent from the table")
	}
}

func TestIndexesRebuildAfterTableChange(t *testing.T) {
	doc := parseIndexFixture(t)

	doc.Nets = append(doc.Nets, Net{
		Name:  "ZNEW",
		Nodes: []Node{{Refdes: "Q1", Pin: "7", PinName: "GATE", HasPinName: true}},
	})
	doc.buildIndexes()

	if name, ok := doc.PinName("Q1", "7"); !ok || name != "GATE" {
		t.Errorf("Rebuilt index missing new node: %q, %v", name, ok)
	}
	if net, ok := doc.NetNameFor("U1", "3"); !ok || net != "DATA0" {
		t.Errorf("Rebuilt index lost existing entry: %q, %v", net, ok)
	}
}

func TestTrace(t *testing.T) {
	doc := parseIndexFixture(t)

	entries, ok := doc.Trace("U1")
	if !ok {
		t.Fatal("Expected U1 to be found")
	}
	want := []TraceEntry{{Net: "DATA0", Pin: "3"}, {Net: "DATA1", Pin: "4"}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Trace(U1) = %+v, want %+v", entries, want)
	}

	// Second call is answered from the cache.
	again, ok := doc.Trace("U1")
	if !ok || !reflect.DeepEqual(again, want) {
		t.Errorf("Cached Trace(U1) = %+v, %v", again, ok)
	}
}

func TestTraceNotFound(t *testing.T) {
	doc := parseIndexFixture(t)

	if _, ok := doc.Trace("U99"); ok {
		t.Error("Trace must report absence for an unknown refdes")
	}
	// The miss is cached too; a repeat query stays absent.
	if _, ok := doc.Trace("U99"); ok {
		t.Error("Repeated Trace for an unknown refdes must stay absent")
	}
}

func TestTraceString(t *testing.T) {
	doc := parseIndexFixture(t)

	s, ok := doc.TraceString("U1")
	if !ok {
		t.Fatal("Expected U1 to be found")
	}
	if s != "U1 DATA0:3 DATA1:4" {
		t.Errorf("TraceString(U1) = %q", s)
	}

	if _, ok := doc.TraceString("U99"); ok {
		t.Error("TraceString must report absence for an unknown refdes")
	}
}
