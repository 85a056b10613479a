package zonetext

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/pp"
)

// digestLength is the size in bytes of each known DS digest type.
//
//nolint:gochecknoglobals
var digestLength = map[uint8]int{
	dns.SHA1:   20,
	dns.SHA256: 32,
	dns.GOST94: 32,
	dns.SHA384: 48,
}

// formatDS gives the registry's presentation of one DS record. The registry
// separates the fields with single spaces.
func formatDS(owner domain.Name, rdata string) string {
	return fmt.Sprintf("%s. IN DS %s", owner, strings.Join(strings.Fields(rdata), " "))
}

// checkDS parses the record and checks that the digest fits its type.
// Digest types unknown to this program are let through with a warning.
func checkDS(ppfmt pp.PP, text string) error {
	rr, err := dns.NewRR(text)
	if err != nil {
		return fmt.Errorf("bad DS record: %w", err)
	}
	ds, ok := rr.(*dns.DS)
	if !ok || ds == nil {
		return fmt.Errorf("bad DS record: %s", text)
	}

	digest, err := hex.DecodeString(strings.ReplaceAll(ds.Digest, " ", ""))
	if err != nil || len(digest) == 0 {
		return fmt.Errorf("bad DS digest: %s", ds.Digest)
	}

	if _, known := dns.AlgorithmToString[ds.Algorithm]; !known {
		ppfmt.Warningf(pp.EmojiUserWarning, "DS record with key tag %d uses unknown algorithm %d",
			ds.KeyTag, ds.Algorithm)
	}

	want, known := digestLength[ds.DigestType]
	if !known {
		ppfmt.Warningf(pp.EmojiUserWarning, "DS record with key tag %d uses unknown digest type %d; its length is not checked",
			ds.KeyTag, ds.DigestType)
		return nil
	}
	if len(digest) != want {
		return fmt.Errorf("DS digest of type %s should be %d bytes long, not %d",
			dns.HashToString[ds.DigestType], want, len(digest))
	}

	return nil
}
