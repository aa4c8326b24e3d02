package ipranges

import (
	"fmt"
	"math/big"
	"net/netip"

	"github.com/henderiw/contrange/pkg/ranges"
	"github.com/henderiw/contrange/pkg/value"
	"go4.org/netipx"
)

// IP adapts a netip.Addr to the range domain. Subtraction measures
// the number of addresses between two IPs.
type IP struct {
	addr netip.Addr
}

func NewIP(addr netip.Addr) IP {
	return IP{addr: addr}
}

func ParseIP(s string) (IP, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IP{}, fmt.Errorf("ip address %s is invalid", s)
	}
	return IP{addr: addr}, nil
}

func (ip IP) Addr() netip.Addr {
	return ip.addr
}

func (ip IP) Compare(other value.Value) (int, error) {
	o, ok := other.(IP)
	if !ok {
		return 0, fmt.Errorf("%w: %T and %T", value.ErrIncomparable, ip, other)
	}
	return ip.addr.Compare(o.addr), nil
}

func (ip IP) Sub(other value.Value) (value.Value, error) {
	o, ok := other.(IP)
	if !ok {
		return nil, fmt.Errorf("%w: %T and %T", value.ErrNotSubtractable, ip, other)
	}
	diff := new(big.Int).Sub(ipToInt(ip.addr), ipToInt(o.addr))
	if !diff.IsInt64() {
		return nil, fmt.Errorf("distance between %s and %s does not fit in an int64", ip, o)
	}
	return value.Int(diff.Int64()), nil
}

func (ip IP) String() string {
	return ip.addr.String()
}

func ipToInt(addr netip.Addr) *big.Int {
	bytes := addr.As16()
	return new(big.Int).SetBytes(bytes[:])
}

// FromIPRange converts an inclusive address range to a range over the
// IP domain, inclusive on both sides.
func FromIPRange(r netipx.IPRange) ranges.Range {
	return ranges.NewBounds(NewIP(r.From()), NewIP(r.To()), true, true)
}

// ParseRange parses the "10.0.0.10-10.0.0.20" notation.
func ParseRange(s string) (ranges.Range, error) {
	ipRange, err := netipx.ParseIPRange(s)
	if err != nil {
		return ranges.Range{}, err
	}
	return FromIPRange(ipRange), nil
}

// ToIPRange converts a bounded range over the IP domain back to an
// inclusive address range, folding exclusive bounds onto the adjacent
// address.
func ToIPRange(r ranges.Range) (netipx.IPRange, error) {
	var ipRange netipx.IPRange
	from, ok := r.Start().(IP)
	if !ok {
		return ipRange, fmt.Errorf("range %s is not bounded by ip addresses", r)
	}
	to, ok := r.End().(IP)
	if !ok {
		return ipRange, fmt.Errorf("range %s is not bounded by ip addresses", r)
	}
	fromAddr := from.addr
	if !r.StartInc() {
		fromAddr = fromAddr.Next()
	}
	toAddr := to.addr
	if !r.EndInc() {
		toAddr = toAddr.Prev()
	}
	ipRange = netipx.IPRangeFrom(fromAddr, toAddr)
	if !ipRange.IsValid() {
		return ipRange, fmt.Errorf("range %s does not contain any address", r)
	}
	return ipRange, nil
}
