package scenario

import "testing"

func TestAllFixturesConstructBoards(t *testing.T) {
	for _, f := range All {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			b, err := f.Board()
			if err != nil {
				t.Fatalf("Board(): %v", err)
			}
			if b.Size() != f.Size {
				t.Fatalf("Size() = %d, want %d", b.Size(), f.Size)
			}
			if err := b.Verify(); err != nil {
				t.Fatalf("Verify(): %v", err)
			}
		})
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("single_stone_capture"); !ok {
		t.Fatal("expected single_stone_capture to be present")
	}
	if _, ok := ByName("does_not_exist"); ok {
		t.Fatal("expected lookup of an unknown name to fail")
	}
}
