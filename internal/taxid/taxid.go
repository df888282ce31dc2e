// Package taxid handles the packed taxonomy ids carried in reference
// sequence names.
package taxid

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Packed is a 64-bit taxonomy id pair: the species id in the high 32
// bits and the genus id in the low 32 bits.
type Packed uint64

// Unknown is the id used for references whose name carries no id.
const Unknown Packed = 0

// Pack combines a species id and a genus id into one Packed id.
func Pack(species, genus uint32) Packed {
	return Packed(uint64(species)<<32 | uint64(genus))
}

// Species returns the species taxonomy id (bits 63..32).
func (p Packed) Species() uint32 {
	return uint32(p >> 32)
}

// Genus returns the genus taxonomy id (bits 31..0).
func (p Packed) Genus() uint32 {
	return uint32(p)
}

// String renders the id as species|genus for logs and inspect output.
func (p Packed) String() string {
	return strconv.FormatUint(uint64(p.Species()), 10) + "|" + strconv.FormatUint(uint64(p.Genus()), 10)
}

// Parse reads a Packed id from a reference sequence name. The id is the
// name's first whitespace or pipe delimited token, as a decimal number.
func Parse(name string) (Packed, error) {
	tok := name
	if i := strings.IndexAny(tok, " \t|"); i >= 0 {
		tok = tok[:i]
	}
	if tok == "" {
		return Unknown, errors.New("empty reference name")
	}

	id, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return Unknown, errors.Wrapf(err, "reference name %q does not begin with a taxonomy id", name)
	}

	return Packed(id), nil
}
