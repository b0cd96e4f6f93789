package permstore

import (
	"encoding/json"
	"errors"
)

// Matrix is the persisted, authoritative record of per-merchant section
// overrides: merchant ID -> section ID -> enabled.
type Matrix map[string]map[string]bool

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for id, entry := range m {
		out[id] = cloneEntry(entry)
	}
	return out
}

func cloneEntry(entry map[string]bool) map[string]bool {
	out := make(map[string]bool, len(entry))
	for k, v := range entry {
		out[k] = v
	}
	return out
}

// Marshal serializes the matrix as the single JSON blob held in the
// persisted slot. String keys, boolean leaves only.
func (m Matrix) Marshal() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Join(ErrCorruptBlob, err)
	}
	return data, nil
}

// UnmarshalMatrix parses the persisted blob. An empty blob yields an
// empty matrix.
func UnmarshalMatrix(data []byte) (Matrix, error) {
	if len(data) == 0 {
		return Matrix{}, nil
	}
	var m Matrix
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrCorruptBlob, err)
	}
	if m == nil {
		m = Matrix{}
	}
	return m, nil
}
