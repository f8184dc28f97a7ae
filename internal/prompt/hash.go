package prompt

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// templateLabel is the coordinate label reserved for template selection.
const templateLabel = "template"

// hashCoordinate maps one selection coordinate onto a 32-bit value. The
// digest folds in every component, so changing any of seed, signature,
// label or attempt moves the result, while identical coordinates always
// collapse to the same value on every platform.
func hashCoordinate(seed, signature uint32, label string, attempt uint32) uint32 {
	var buf [4]byte
	var d xxhash.Digest
	d.Reset()
	binary.LittleEndian.PutUint32(buf[:], seed)
	d.Write(buf[:])
	binary.LittleEndian.PutUint32(buf[:], signature)
	d.Write(buf[:])
	d.WriteString(label)
	binary.LittleEndian.PutUint32(buf[:], attempt)
	d.Write(buf[:])
	return uint32(d.Sum64())
}

// hashToIndex maps a hash value onto a valid index of a pool with
// poolSize entries. poolSize must be positive.
func hashToIndex(h uint32, poolSize int) int {
	return int(h % uint32(poolSize))
}

// normalizePrompt lower-cases and whitespace-collapses a prompt so that
// visually identical prompts share one signature.
func normalizePrompt(prompt string) string {
	return strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
}

// inputSignature derives the 32-bit signature of a prompt from its
// normalized form.
func inputSignature(prompt string) uint32 {
	return uint32(xxhash.Sum64String(normalizePrompt(prompt)))
}
