package update

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/index"
)

// OpKind is the kind of a raw batch operation.
type OpKind uint8

const (
	OpInsertSection OpKind = iota
	OpDeleteSection
	OpReloadSection
	OpMoveSection
	OpInsertItem
	OpDeleteItem
	OpReloadItem
	OpMoveItem
)

var opNames = [...]string{
	OpInsertSection: "insert section",
	OpDeleteSection: "delete section",
	OpReloadSection: "reload section",
	OpMoveSection:   "move section",
	OpInsertItem:    "insert item",
	OpDeleteItem:    "delete item",
	OpReloadItem:    "reload item",
	OpMoveItem:      "move item",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// ParseOpKind converts a name produced by String back to an OpKind.
func ParseOpKind(s string) (OpKind, error) {
	for k, name := range opNames {
		if name == s {
			return OpKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown update operation %q", s)
}

// Section reports whether the operation targets whole sections.
func (k OpKind) Section() bool { return k <= OpMoveSection }

// Op is one raw operation as queued by the caller. From is set for deletes,
// reloads and move sources (old numbering); To for inserts and move
// destinations (new numbering). Section operations use section paths.
type Op struct {
	Kind OpKind
	From index.Path
	To   index.Path
}

func (o Op) String() string {
	switch o.Kind {
	case OpInsertSection, OpInsertItem:
		return fmt.Sprintf("%s %v", o.Kind, o.To)
	case OpMoveSection, OpMoveItem:
		return fmt.Sprintf("%s %v -> %v", o.Kind, o.From, o.To)
	}
	return fmt.Sprintf("%s %v", o.Kind, o.From)
}

// Batch queues raw operations in call order.
type Batch struct {
	ops []Op
}

// Len returns the number of queued operations.
func (b *Batch) Len() int { return len(b.ops) }

// Ops returns the queued operations. The slice must not be modified.
func (b *Batch) Ops() []Op { return b.ops }

// Reset drops every queued operation.
func (b *Batch) Reset() { b.ops = b.ops[:0] }

// Add queues a raw operation.
func (b *Batch) Add(op Op) { b.ops = append(b.ops, op) }

func (b *Batch) InsertSections(sections ...int) {
	for _, s := range sections {
		b.Add(Op{Kind: OpInsertSection, To: index.SectionPath(s)})
	}
}

func (b *Batch) DeleteSections(sections ...int) {
	for _, s := range sections {
		b.Add(Op{Kind: OpDeleteSection, From: index.SectionPath(s)})
	}
}

func (b *Batch) ReloadSections(sections ...int) {
	for _, s := range sections {
		b.Add(Op{Kind: OpReloadSection, From: index.SectionPath(s)})
	}
}

func (b *Batch) MoveSection(from, to int) {
	b.Add(Op{Kind: OpMoveSection, From: index.SectionPath(from), To: index.SectionPath(to)})
}

func (b *Batch) InsertItems(paths ...index.Path) {
	for _, p := range paths {
		b.Add(Op{Kind: OpInsertItem, To: p})
	}
}

func (b *Batch) DeleteItems(paths ...index.Path) {
	for _, p := range paths {
		b.Add(Op{Kind: OpDeleteItem, From: p})
	}
}

func (b *Batch) ReloadItems(paths ...index.Path) {
	for _, p := range paths {
		b.Add(Op{Kind: OpReloadItem, From: p})
	}
}

func (b *Batch) MoveItem(from, to index.Path) {
	b.Add(Op{Kind: OpMoveItem, From: from, To: to})
}
