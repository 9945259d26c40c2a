// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reduced row-echelon form via Gauss–Jordan elimination.
//
// Numeric policy:
//   - The pivot is the FIRST row at or below the target row with a non-zero
//     entry in the pivot column (exact comparison with zeroPivot), not the
//     largest in magnitude. Adequate for small, well-conditioned inputs.

package matrix

// zeroPivot is the value a candidate pivot is compared against.
const zeroPivot = 0.0

// RREF returns the reduced row-echelon form of m as a new matrix.
// MAIN DESCRIPTION:
//   - For each target row r, with the current pivot column lead:
//
// Implementation:
//   - Stage 1: find i ≥ r with data[i,lead] != 0; when the column is exhausted,
//     advance lead (stop once lead reaches Cols).
//   - Stage 2: swap rows i and r.
//   - Stage 3: divide row r by its pivot.
//   - Stage 4: eliminate column lead from every other row.
//
// Behavior highlights:
//   - The receiver is unmodified.
//   - Idempotent: RREF(RREF(A)) == RREF(A) up to floating-point rounding.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c).
//
// AI-Hints:
//   - Operates on the flat buffer; shape is fixed for the whole run.
func (m *Dense) RREF() *Dense {
	res := m.Clone()
	rows, cols := res.r, res.c
	d := res.data

	lead := 0
	for r := 0; r < rows; r, lead = r+1, lead+1 {
		if lead >= cols {
			break
		}

		// Stage 1: locate a non-zero pivot in column lead.
		i := r
		for d[i*cols+lead] == zeroPivot {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return res
				}
			}
		}

		// Stage 2: swap rows i and r.
		if i != r {
			for k := 0; k < cols; k++ {
				d[r*cols+k], d[i*cols+k] = d[i*cols+k], d[r*cols+k]
			}
		}

		// Stage 3: normalize the pivot row.
		pivot := d[r*cols+lead]
		for k := 0; k < cols; k++ {
			d[r*cols+k] /= pivot
		}

		// Stage 4: eliminate the pivot column everywhere else.
		for j := 0; j < rows; j++ {
			if j == r {
				continue
			}
			lv := d[j*cols+lead]
			if lv == zeroPivot {
				continue
			}
			for k := 0; k < cols; k++ {
				d[j*cols+k] -= lv * d[r*cols+k]
			}
		}
	}

	return res
}
