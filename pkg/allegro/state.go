package allegro

import (
	"fmt"
	"strings"
)

// Line markers of the expanded netlist format.
const (
	markerNetName  = "NET_NAME"
	markerNodeName = "NODE_NAME"
	markerEnd      = "END."
)

const (
	// The first three lines of the file are header metadata; the second one
	// carries version, date and time.
	headerLineCount = 3

	// Pin names sit exactly two lines below their NODE_NAME record.
	pinNameLineOffset = 2
)

// cleanPinName strips the backslash, space, quote, semicolon and colon
// characters that wrap pin labels in node records.
func cleanPinName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', ' ', '\'', ';', ':':
			return -1
		}
		return r
	}, s)
}

// parseState carries the line scanner state between lines. It is advanced by
// step, one trimmed input line at a time.
type parseState struct {
	// expectingNetName marks the line right after a NET_NAME marker, which
	// holds the net's name.
	expectingNetName bool

	// processingNet is set while nodes accumulate for the open net.
	processingNet bool
	currentNet    string
	currentNodes  []Node

	// Pin-name capture: armed by a NODE_NAME record, fires once pinNameLines
	// reaches pinNameLineOffset. pendingNode indexes currentNodes, -1 when
	// no capture is armed.
	waitingForPinName bool
	pinNameLines      int
	pendingNode       int

	headerLines int
	lineNo      int
}

func newParseState() *parseState {
	return &parseState{pendingNode: -1}
}

// step consumes one line, appending any completed net to doc and recording
// header fields as they appear. Rules are evaluated in order and more than
// one may fire for the same line. At most one recoverable error is reported
// per line: a failed rule skips the remaining rules for that line.
func (st *parseState) step(doc *Document, s string) error {
	st.lineNo++

	// Rule 1: the line after a NET_NAME marker is the net's name, with
	// surrounding single quotes stripped.
	if st.expectingNetName {
		st.expectingNetName = false
		st.processingNet = true
		st.currentNet = strings.Trim(s, "'")
	}

	// Rule 2: a net boundary closes the open net. The pin-name capture state
	// is reset unconditionally so a label armed in the closing net cannot
	// attach to the next net's first node.
	if strings.HasPrefix(s, markerNetName) || strings.HasPrefix(s, markerEnd) {
		if st.processingNet {
			st.processingNet = false
			doc.Nets = append(doc.Nets, Net{Name: st.currentNet, Nodes: st.currentNodes})
			st.currentNet = ""
			st.currentNodes = nil
		}

		st.waitingForPinName = false
		st.pinNameLines = 0
		st.pendingNode = -1

		st.expectingNetName = true
	} else if strings.HasPrefix(s, markerNodeName) {
		// Rule 3: NODE_NAME <refdes> <pin> opens a node and arms the
		// pin-name capture.
		parts := strings.Fields(s)
		if len(parts) < 3 {
			return &lineError{line: st.lineNo, msg: fmt.Sprintf("node record has %d fields, want at least 3", len(parts))}
		}
		st.currentNodes = append(st.currentNodes, Node{Refdes: parts[1], Pin: parts[2]})
		st.waitingForPinName = true
		st.pinNameLines = 0
		st.pendingNode = len(st.currentNodes) - 1
	}

	// Rule 4: count lines until the pin-name offset is reached, then capture
	// the cleaned text on the armed node.
	if st.waitingForPinName {
		if st.pinNameLines < pinNameLineOffset {
			st.pinNameLines++
		} else {
			st.waitingForPinName = false
			if st.pendingNode >= 0 && st.pendingNode < len(st.currentNodes) {
				st.currentNodes[st.pendingNode].PinName = cleanPinName(s)
				st.currentNodes[st.pendingNode].HasPinName = true
			}
			st.pendingNode = -1
		}
	}

	// Rule 5: header metadata. The second line of the file looks like
	//   { Using PSTWRITER 16.3.0 p002Mar-22-2016 at 10:54:51 }
	// version, date and time sit at token indices 3, 4 and 6; the date token
	// carries a four-character prefix.
	if st.headerLines < headerLineCount {
		st.headerLines++
	}
	if st.headerLines == 2 {
		cfg := strings.Fields(s)
		if len(cfg) > 3 {
			doc.Version = cfg[3]
		}
		if len(cfg) > 4 {
			if d := cfg[4]; len(d) > 4 {
				doc.Date = d[4:]
			}
		}
		if len(cfg) > 6 {
			doc.Time = cfg[6]
		} else {
			return &lineError{line: st.lineNo, msg: fmt.Sprintf("header line has %d fields, want at least 7", len(cfg))}
		}
	}

	return nil
}
