// SPDX-License-Identifier: MIT

package decomp

// Test-Bridge (White-Box) for Numeric Constants
//
// Purpose:
//   - Expose the threshold ingredients to decomp_test ONLY, so the
//     SigmaThreshold formula can be asserted exactly without widening
//     the production API.

// MachineEpsilon_TestOnly mirrors the unit roundoff used by
// SigmaThreshold.
const MachineEpsilon_TestOnly = machineEpsilon

// PanicEpsilonInvalid_TestOnly avoids a magic string in option tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
