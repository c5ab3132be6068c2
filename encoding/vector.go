package encoding

// SparseVector is a sparse numeric vector of width Size.
//
// Indices and Values always have the same length. Indices are emitted in
// input order and are neither sorted nor deduplicated.
type SparseVector struct {
	Size    int       `json:"size"`
	Indices []int64   `json:"indices"`
	Values  []float64 `json:"values"`
}

// Len returns the number of stored entries.
func (sv SparseVector) Len() int {
	return len(sv.Indices)
}

// ToDense expands the vector. Later entries overwrite earlier ones with the
// same index; indices outside [0, Size) are ignored.
func (sv SparseVector) ToDense() DenseVector {
	values := make([]float64, max(sv.Size, 0))
	for i, idx := range sv.Indices {
		if idx >= 0 && idx < int64(len(values)) {
			values[idx] = sv.Values[i]
		}
	}

	return DenseVector{Values: values}
}

// DenseVector is a dense numeric vector; positions without a value are 0.
type DenseVector struct {
	Values []float64 `json:"values"`
}

// Len returns the vector width.
func (dv DenseVector) Len() int {
	return len(dv.Values)
}

// ToSparse assembles IdValue pairs into a SparseVector of width numUnique.
//
// When filterZeros is set, entries whose value is exactly 0.0 are removed
// after assembly.
//
// Ids are copied as given, with no range check. The only id outside
// [0, numUnique) the encoders produce is the padding id -1 of an empty
// vocabulary under the discard policy, which yields
// {Size: 0, Indices: [-1], Values: [0]} (or no entries with filterZeros).
// SparseVector.ToDense and ToDense ignore such ids.
func ToSparse(ivs []IdValue, numUnique int, filterZeros bool) SparseVector {
	sv := SparseVector{
		Size:    numUnique,
		Indices: make([]int64, len(ivs)),
		Values:  make([]float64, len(ivs)),
	}
	for i, iv := range ivs {
		sv.Indices[i] = iv.ID
		sv.Values[i] = iv.Value
	}

	if filterZeros {
		sv = filterZeroEntries(sv)
	}

	return sv
}

// filterZeroEntries compacts sv in place, keeping entries with a non-zero value.
func filterZeroEntries(sv SparseVector) SparseVector {
	n := 0
	for i, value := range sv.Values {
		if value == 0 {
			continue
		}
		sv.Indices[n] = sv.Indices[i]
		sv.Values[n] = value
		n++
	}
	sv.Indices = sv.Indices[:n]
	sv.Values = sv.Values[:n]

	return sv
}

// ToDense writes IdValue pairs into a DenseVector of width numUnique.
//
// The last write wins when ids repeat. Ids outside [0, numUnique) are
// ignored; they only occur for an empty vocabulary under the discard policy,
// where the padding id is -1.
func ToDense(ivs []IdValue, numUnique int) DenseVector {
	values := make([]float64, max(numUnique, 0))
	for _, iv := range ivs {
		if iv.ID >= 0 && iv.ID < int64(len(values)) {
			values[iv.ID] = iv.Value
		}
	}

	return DenseVector{Values: values}
}
