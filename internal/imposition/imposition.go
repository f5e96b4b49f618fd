// SPDX-License-Identifier: MPL-2.0

// Package imposition computes saddle-stitch booklet imposition plans.
//
// Imposition is the arrangement of logical pages onto physical sheet sides so
// that printing double-sided, folding each signature in half, and nesting the
// signatures in sequence reconstructs the logical reading order. A signature is
// a group of nested folded sheets; each sheet side holds two logical pages.
//
// The whole computation is integer arithmetic over the page count and the
// signature size, so it lives here as stateless functions with no dependency on
// pagination or rendering.
package imposition

import (
	"errors"
	"fmt"
)

// Blank marks a padded sheet-side slot that carries no logical page.
const Blank = 0

// ErrInvalidSignatureSize is returned when a signature size is not a positive
// multiple of four.
var ErrInvalidSignatureSize = errors.New("invalid signature size")

type (
	// InvalidSignatureSizeError reports a rejected signature size. It wraps
	// ErrInvalidSignatureSize for errors.Is() compatibility.
	InvalidSignatureSizeError struct {
		Size int
	}

	// SheetSide is one printable face of a physical sheet. Left and Right are
	// 1-based logical page numbers, or Blank for padding slots.
	SheetSide struct {
		Left  int
		Right int
	}

	// Sheet is one physical sheet of a signature: the outward face and the
	// face revealed after flipping on the short edge.
	Sheet struct {
		Front SheetSide
		Back  SheetSide
	}

	// Signature is an ordered run of sheets, outermost first, that folds into
	// one booklet unit.
	Signature struct {
		Sheets []Sheet
	}

	// Plan is the full imposition of a document: every logical page 1..Pages
	// appears exactly once across the signatures, and padded slots (pages
	// beyond Pages) are Blank. Padding only ever occurs in the final
	// signature.
	Plan struct {
		Pages         int
		PaddedPages   int
		SignatureSize int
		Signatures    []Signature
	}
)

func (e *InvalidSignatureSizeError) Error() string {
	return fmt.Sprintf("signature size %d must be a positive multiple of 4", e.Size)
}

func (e *InvalidSignatureSizeError) Unwrap() error { return ErrInvalidSignatureSize }

// ValidateSignatureSize rejects sizes that are not positive multiples of 4.
func ValidateSignatureSize(size int) error {
	if size <= 0 || size%4 != 0 {
		return &InvalidSignatureSizeError{Size: size}
	}
	return nil
}

// Impose computes the imposition plan for a document of pages logical pages
// using the given signature size.
//
// Within one signature of S pages, sheet k (1-indexed from the outside) carries
// logical pages (S−2k+2, 2k−1) on the front and (2k, S−2k+1) on the back, for
// k = 1..S/4. Page numbers beyond the real page count become Blank padding;
// padding is confined to the tail of the final signature.
func Impose(pages, signatureSize int) (*Plan, error) {
	if err := ValidateSignatureSize(signatureSize); err != nil {
		return nil, err
	}
	if pages < 1 {
		return nil, fmt.Errorf("page count %d must be at least 1", pages)
	}

	numSignatures := (pages + signatureSize - 1) / signatureSize
	padded := numSignatures * signatureSize

	plan := &Plan{
		Pages:         pages,
		PaddedPages:   padded,
		SignatureSize: signatureSize,
		Signatures:    make([]Signature, 0, numSignatures),
	}

	clamp := func(page int) int {
		if page > pages {
			return Blank
		}
		return page
	}

	for sig := 0; sig < numSignatures; sig++ {
		base := sig * signatureSize
		sheets := make([]Sheet, 0, signatureSize/4)
		for k := 1; k <= signatureSize/4; k++ {
			sheets = append(sheets, Sheet{
				Front: SheetSide{
					Left:  clamp(base + signatureSize - 2*k + 2),
					Right: clamp(base + 2*k - 1),
				},
				Back: SheetSide{
					Left:  clamp(base + 2*k),
					Right: clamp(base + signatureSize - 2*k + 1),
				},
			})
		}
		plan.Signatures = append(plan.Signatures, Signature{Sheets: sheets})
	}

	return plan, nil
}

// SheetCount returns the number of physical sheets across all signatures.
func (p *Plan) SheetCount() int {
	count := 0
	for _, sig := range p.Signatures {
		count += len(sig.Sheets)
	}
	return count
}

// BlankCount returns the number of padded slots in the plan.
func (p *Plan) BlankCount() int {
	return p.PaddedPages - p.Pages
}

// ReadingOrder reconstructs the logical page sequence of one signature by
// simulating the fold: the nested stack is read front-to-back, taking the
// right-hand page of each face on the way in and the left-hand page on the way
// out. Used to verify the imposition round-trips.
func (s *Signature) ReadingOrder() []int {
	order := make([]int, 0, len(s.Sheets)*4)
	for _, sheet := range s.Sheets {
		order = append(order, sheet.Front.Right, sheet.Back.Left)
	}
	for i := len(s.Sheets) - 1; i >= 0; i-- {
		order = append(order, s.Sheets[i].Back.Right, s.Sheets[i].Front.Left)
	}
	return order
}
