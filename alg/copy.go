package alg

// CopyFront inserts clone(e) at the front of dst for every element e
// of src in order. Because every element is inserted at the front, the
// copies end up in dst in the reverse of their order in src.
//
// If an insert fails, CopyFront stops and returns the error. Elements
// that were already inserted stay in dst.
func CopyFront[SP Position[SP, S], DP, S, D any](src Range[SP], dst FrontInserter[DP, D], clone func(S) D) error {
	for p := src.Begin(); p != src.End(); p = p.Next() {
		if _, err := dst.InsertFront(clone(p.Get())); err != nil {
			return err
		}
	}
	return nil
}

// CopyBefore is like [CopyFront] but inserts every element just before
// at, so the copies keep the order that they had in src.
func CopyBefore[SP Position[SP, S], DP, S, D any](src Range[SP], dst BeforeInserter[DP, D], at DP, clone func(S) D) error {
	for p := src.Begin(); p != src.End(); p = p.Next() {
		if _, err := dst.InsertBefore(at, clone(p.Get())); err != nil {
			return err
		}
	}
	return nil
}

// CopyAfter is like [CopyFront] but inserts every element just after
// at. As with CopyFront, the copies end up in reverse order.
func CopyAfter[SP Position[SP, S], DP, S, D any](src Range[SP], dst AfterInserter[DP, D], at DP, clone func(S) D) error {
	for p := src.Begin(); p != src.End(); p = p.Next() {
		if _, err := dst.InsertAfter(at, clone(p.Get())); err != nil {
			return err
		}
	}
	return nil
}
