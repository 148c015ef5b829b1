package blob

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditKind classifies a single edit region.
type EditKind int

const (
	// EditInsert adds lines present only on the new side.
	EditInsert EditKind = iota
	// EditDelete removes lines present only on the old side.
	EditDelete
	// EditReplace substitutes a run of old lines with new lines.
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditReplace:
		return "replace"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// Edit is one contiguous change between two line sequences. Offsets
// are zero-based line indexes with Begin inclusive and End exclusive,
// so BeginA == EndA describes a pure insertion point on the old side
// and BeginB == EndB a pure deletion point on the new side.
type Edit struct {
	Kind   EditKind
	BeginA int
	EndA   int
	BeginB int
	EndB   int
}

// Comparator turns two text blobs into an ordered edit script. Equal
// regions are elided; the script holds only the changes. A Comparator
// must be deterministic for fixed inputs.
type Comparator interface {
	Compare(oldContent, newContent []byte) []Edit
}

// Myers is the default Comparator: a line-oriented greedy Myers
// diff with the time-based bail-out disabled, so the script for a
// given pair of inputs is always the same.
type Myers struct{}

func (Myers) Compare(oldContent, newContent []byte) []Edit {
	diffs := diff.DoWithTimeout(string(oldContent), string(newContent), 0)
	return editScript(diffs)
}

// Diff returns the ordered edit script transforming the old blob's
// lines into the new blob's lines, using the default Myers
// comparator.
//
// A zero id on either side stands for absent content: that side is an
// empty line sequence and storage is not consulted for it. If both
// ids are zero the result is empty without any I/O. If either side's
// loaded content is binary the result is the empty script; binary
// content is not diffed and not an error. Load failures surface as
// *StorageError.
func Diff(store storer.EncodedObjectStorer, oldID, newID plumbing.Hash) ([]Edit, error) {
	return diffBlobs(store, oldID, newID, Myers{})
}

// DiffWith is Diff with a caller-supplied comparator. A nil
// comparator is rejected with ErrInvalidArgument.
func DiffWith(store storer.EncodedObjectStorer, oldID, newID plumbing.Hash, cmp Comparator) ([]Edit, error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	return diffBlobs(store, oldID, newID, cmp)
}

func diffBlobs(store storer.EncodedObjectStorer, oldID, newID plumbing.Hash, cmp Comparator) ([]Edit, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil store", ErrInvalidArgument)
	}
	if oldID.IsZero() && newID.IsZero() {
		return []Edit{}, nil
	}

	var oldContent, newContent []byte
	var err error
	if !oldID.IsZero() {
		if oldContent, err = content(store, oldID); err != nil {
			return nil, err
		}
		if IsBinary(oldContent) {
			return []Edit{}, nil
		}
	}
	if !newID.IsZero() {
		if newContent, err = content(store, newID); err != nil {
			return nil, err
		}
		if IsBinary(newContent) {
			return []Edit{}, nil
		}
	}
	return cmp.Compare(oldContent, newContent), nil
}

// editScript folds raw line-mode diff output into Edits. Each maximal
// run of non-equal diffs becomes a single Edit; a run holding both
// deleted and inserted lines is a replace.
func editScript(diffs []diffmatchpatch.Diff) []Edit {
	edits := []Edit{}
	aLine, bLine := 0, 0
	runA, runB := 0, 0
	del, ins := 0, 0

	flush := func() {
		if del == 0 && ins == 0 {
			return
		}
		e := Edit{
			BeginA: runA, EndA: runA + del,
			BeginB: runB, EndB: runB + ins,
		}
		switch {
		case del > 0 && ins > 0:
			e.Kind = EditReplace
		case del > 0:
			e.Kind = EditDelete
		default:
			e.Kind = EditInsert
		}
		edits = append(edits, e)
		del, ins = 0, 0
	}

	for _, d := range diffs {
		n := lineCount(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			aLine += n
			bLine += n
		case diffmatchpatch.DiffDelete:
			if del == 0 && ins == 0 {
				runA, runB = aLine, bLine
			}
			del += n
			aLine += n
		case diffmatchpatch.DiffInsert:
			if del == 0 && ins == 0 {
				runA, runB = aLine, bLine
			}
			ins += n
			bLine += n
		}
	}
	flush()
	return edits
}

// Lines segments content into lines without terminators. The indexes
// of the returned slice are what Edit offsets refer to. A trailing
// newline does not open a final empty line, matching the line-mode
// diff segmentation.
func Lines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
