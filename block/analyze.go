package block

// AssignedNames reports the names the block assigns, in first-assignment
// order with duplicates collapsed. The scan is purely syntactic:
//
//   - Assign contributes its target, Destructure every target.
//   - Seq bodies are flattened; nesting depth does not hide assignments.
//   - Scoped bodies are flattened too, even though execution drops a
//     scoped assignment whose name has no prior outer binding. The report
//     is therefore a superset of what Run may bind; this mismatch is kept
//     deliberately and covered by tests.
//   - Call contributes the target of its wrapped statement only when that
//     statement is a plain Assign.
//   - ExprStmt contributes nothing.
//
// The only failure is a nil block.
func AssignedNames(b *Block) ([]string, error) {
	if b == nil {
		return nil, ErrNilBlock
	}
	var (
		names []string
		seen  = make(map[string]struct{})
	)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, s := range b.Stmts {
		scanStmt(s, add)
	}
	return names, nil
}

func scanStmt(s Stmt, add func(string)) {
	switch s := s.(type) {
	case Assign:
		add(s.Name)
	case Destructure:
		for _, name := range s.Names {
			add(name)
		}
	case Seq:
		for _, inner := range s.Body {
			scanStmt(inner, add)
		}
	case Scoped:
		for _, inner := range s.Body {
			scanStmt(inner, add)
		}
	case Call:
		if a, ok := s.Arg.(Assign); ok {
			add(a.Name)
		}
	}
}
