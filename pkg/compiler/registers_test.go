package compiler

import "testing"

func TestRegisterName(t *testing.T) {
	tests := []struct {
		r    Register
		size int
		want string
	}{
		{RAX, 1, "%al"},
		{RAX, 4, "%eax"},
		{RAX, 8, "%rax"},
		{R11, 4, "%r11d"},
		{R8, 1, "%r8b"},
	}
	for _, tc := range tests {
		if got := tc.r.name(tc.size); got != tc.want {
			t.Errorf("Register(%d).name(%d) = %q; want %q", tc.r, tc.size, got, tc.want)
		}
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		size int
		want byte
	}{{1, 'b'}, {4, 'l'}, {8, 'q'}}
	for _, tc := range tests {
		if got := suffix(tc.size); got != tc.want {
			t.Errorf("suffix(%d) = %c; want %c", tc.size, got, tc.want)
		}
	}
}

func TestGetregReturnsFreeRegisters(t *testing.T) {
	rf := newRegisterFile(0)
	seen := map[Register]bool{}
	for i := 0; i < int(numRegisters); i++ {
		r := rf.getreg()
		if seen[r] {
			t.Fatalf("getreg returned %v twice before anything was freed", r)
		}
		seen[r] = true
		rf.assign(&Number{exprMeta: newExprMeta(Int), Value: int64(i)}, r)
	}
}

func TestGetregExhaustionPanics(t *testing.T) {
	rf := newRegisterFile(0)
	for i := 0; i < int(numRegisters); i++ {
		r := rf.getreg()
		rf.assign(&Number{exprMeta: newExprMeta(Int), Value: int64(i)}, r)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("getreg should panic once every register is bound")
		}
	}()
	rf.getreg()
}

func TestAssignRebindsRegister(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Int), Value: 1}
	b := &Number{exprMeta: newExprMeta(Int), Value: 2}

	rf.assign(a, RAX)
	rf.assign(b, RAX)

	if a.meta().register() != noRegister {
		t.Error("the evicted node should lose its register binding")
	}
	if b.meta().register() != RAX {
		t.Error("the new node should hold the register")
	}
}

func TestLoadSpillsPriorOccupant(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Int), Value: 1}
	b := &Number{exprMeta: newExprMeta(Int), Value: 2}
	rf.assign(a, RAX)

	sr := rf.load(b, RAX)
	if !sr.spilled || sr.victim != Expr(a) {
		t.Fatalf("load should report the evicted occupant, got %+v", sr)
	}
	if a.meta().register() != noRegister {
		t.Error("the spilled node should have its register binding cleared")
	}
	if a.meta().offset != sr.offset {
		t.Error("the spilled node's offset should match the reported spill slot")
	}
}

func TestLoadOfAlreadyResidentNodeDoesNotSpill(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Int), Value: 1}
	rf.assign(a, RAX)

	sr := rf.load(a, RAX)
	if sr.spilled {
		t.Fatal("loading a node already resident in its target register should not spill")
	}
}

func TestFreeClearsBinding(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Int), Value: 1}
	rf.assign(a, RDI)
	rf.free(RDI)

	if a.meta().register() != noRegister {
		t.Error("free should clear the node's register binding")
	}
	if rf.getreg() != RAX {
		t.Error("freeing RDI first should not change allocation order starting from RAX")
	}
}

func TestFreeAllClearsEveryBinding(t *testing.T) {
	rf := newRegisterFile(0)
	nodes := make([]*Number, numRegisters)
	for i := range nodes {
		nodes[i] = &Number{exprMeta: newExprMeta(Int), Value: int64(i)}
		rf.assign(nodes[i], Register(i))
	}
	rf.freeAll()
	for i, n := range nodes {
		if n.meta().register() != noRegister {
			t.Errorf("node %d should be unbound after freeAll", i)
		}
	}
	if rf.getreg() != RAX {
		t.Error("every register should be available again after freeAll")
	}
}

func TestSpillAllSpillsEveryLiveRegister(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Int), Value: 1}
	b := &Number{exprMeta: newExprMeta(Int), Value: 2}
	rf.assign(a, RAX)
	rf.assign(b, RDI)

	results := rf.spillAll()
	if len(results) != 2 {
		t.Fatalf("spillAll should report 2 evictions, got %d", len(results))
	}
	if a.meta().register() != noRegister || b.meta().register() != noRegister {
		t.Error("every live node should lose its register binding after spillAll")
	}
}

func TestClearOnEmptyRegisterIsNoop(t *testing.T) {
	rf := newRegisterFile(0)
	sr := rf.clear(RDX)
	if sr.spilled {
		t.Error("clearing an already-empty register should not report a spill")
	}
}

func TestClearEvictsWithoutInstallingNewOwner(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Int), Value: 1}
	rf.assign(a, RDX)

	sr := rf.clear(RDX)
	if !sr.spilled || sr.victim != Expr(a) {
		t.Fatalf("clear should report the evicted occupant, got %+v", sr)
	}
	if rf.bound[RDX] != nil {
		t.Error("clear must leave the register unbound, not install a new owner")
	}
}

func TestAllocSlotDescendsBySize(t *testing.T) {
	rf := newRegisterFile(-16)
	first := rf.allocSlot(4)
	second := rf.allocSlot(8)
	if first != -20 || second != -28 {
		t.Errorf("allocSlot() = %d, %d; want -20, -28", first, second)
	}
}

func TestLoadSpillsIntoASlotSizedToTheVictimsType(t *testing.T) {
	rf := newRegisterFile(0)
	a := &Number{exprMeta: newExprMeta(Char), Value: 1}
	b := &Number{exprMeta: newExprMeta(Int), Value: 2}
	rf.assign(a, RAX)

	sr := rf.load(b, RAX)
	if sr.offset != -1 {
		t.Errorf("spilling a char should reserve a 1-byte slot, got offset %d", sr.offset)
	}

	c := &Number{exprMeta: newExprMeta(Long), Value: 3}
	rf.assign(c, RDI)
	sr2 := rf.load(&Number{exprMeta: newExprMeta(Int), Value: 4}, RDI)
	if sr2.offset != -9 {
		t.Errorf("spilling a long after a 1-byte slot should reserve 8 more bytes, got offset %d", sr2.offset)
	}
}
