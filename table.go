/*
Copyright 2024 Tim St. Pierre
Tracking of the RE/IS instruction table selected in the controller
*/
package dogs164

import "fmt"

// Table is one of the controller instruction tables, selected by the RE and
// IS bits of the last function set command.
type Table uint8

const (
	TableRE0IS0 Table = iota
	TableRE0IS1
	TableRE1IS0
	TableRE1IS1
)

func (t Table) RE() bool { return t == TableRE1IS0 || t == TableRE1IS1 }
func (t Table) IS() bool { return t == TableRE0IS1 || t == TableRE1IS1 }

func (t Table) String() string {
	return fmt.Sprintf("RE%d/IS%d", b2i(t.RE()), b2i(t.IS()))
}

func tableOf(re, is bool) Table {
	switch {
	case re && is:
		return TableRE1IS1
	case re:
		return TableRE1IS0
	case is:
		return TableRE0IS1
	}
	return TableRE0IS0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// tableState mirrors the sticky RE and IS bits. It starts unknown since
// nothing can be read back from the controller.
type tableState struct {
	known bool
	re    bool
	is    bool
}

func (s tableState) at(t Table) bool {
	return s.known && s.re == t.RE() && s.is == t.IS()
}

// apply updates the state for a function set command. With RE=1 the low bit
// is REV and IS keeps its value.
func (s *tableState) apply(cmd byte) {
	if cmd&0xE0 != 0x20 {
		return
	}
	if cmd&0x02 != 0 {
		s.re = true
		return
	}
	s.re = false
	s.is = cmd&OPT_IS != 0
	s.known = true
}

// path returns the function set commands that reach t from s. An RE=1 table
// can only be entered with the right IS value already latched, so when IS
// is wrong or unknown the RE=0 command of the same IS comes first.
func (s tableState) path(t Table, f FunctionSet) []byte {
	re0 := f.CmdRE0IS0()
	if t.IS() {
		re0 = f.CmdRE0IS1()
	}
	if !t.RE() {
		return []byte{re0}
	}
	if s.known && s.is == t.IS() {
		return []byte{f.CmdRE1IS0()}
	}
	return []byte{re0, f.CmdRE1IS0()}
}
