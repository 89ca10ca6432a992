package runoff2tex

// docState is the document-level state mutated by the interpreter over one
// translation run. Created at run start, discarded at end; nothing persists.
type docState struct {
	listBullets []string // one entry per open list; "" = default item label
	inLiteral   bool
	inComment   bool

	pendingTitle string
	titlePending bool

	inAppendix    bool
	openBold      int
	openFootnotes int
	openNotes     int

	latch latchState
}

func (s *docState) pushList(bullet string) {
	s.listBullets = append(s.listBullets, bullet)
}

// popList removes the innermost list. Reports false when no list is open;
// list ends without matching starts are no-ops, never errors.
func (s *docState) popList() bool {
	if len(s.listBullets) == 0 {
		return false
	}
	s.listBullets = s.listBullets[:len(s.listBullets)-1]
	return true
}

func (s *docState) currentBullet() string {
	if len(s.listBullets) == 0 {
		return ""
	}
	return s.listBullets[len(s.listBullets)-1]
}
