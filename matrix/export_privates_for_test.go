// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Storage Representation
//
// Purpose:
//   - Expose the private storage tag to matrix_test ONLY, so the
//     diagonal→sparse promotion state machine is directly observable
//     without widening the production API. Representation transparency
//     is a production guarantee; tests are the one consumer allowed to
//     look behind it.
//
// Provided Surface:
//   - StorageKind_TestOnly(m): stable string tag of the current strategy.
//
// Behavior & Determinism:
//   - Pure read; no allocations, no side effects.

// StorageKind_TestOnly reports the concrete storage strategy currently
// held by m: "dense", "diagonal", "sparse" or "wrap".
func StorageKind_TestOnly(m *Matrix) string {
	switch m.s.kind() {
	case kindDense:
		return "dense"
	case kindDiagonal:
		return "diagonal"
	case kindSparse:
		return "sparse"
	case kindWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// PanicEpsilonInvalid_TestOnly avoids a magic string in option tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
