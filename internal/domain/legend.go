package domain

// Legend maps post symbols to statuses. The first symbol of each category
// is the one written when generating post text.
type Legend struct {
	Complete   []string `json:"complete"`
	Ongoing    []string `json:"ongoing"`
	Incomplete []string `json:"incomplete"`
}

// Symbols returns every symbol in category order.
func (l Legend) Symbols() []string {
	out := make([]string, 0, len(l.Complete)+len(l.Ongoing)+len(l.Incomplete))
	out = append(out, l.Complete...)
	out = append(out, l.Ongoing...)
	return append(out, l.Incomplete...)
}

func (l Legend) Clone() Legend {
	return Legend{
		Complete:   append([]string(nil), l.Complete...),
		Ongoing:    append([]string(nil), l.Ongoing...),
		Incomplete: append([]string(nil), l.Incomplete...),
	}
}
