package buckets

// Stats describes the shape of a table.
type Stats struct {
	// Len and Cap are as returned by [Table.Len] and [Table.Cap].
	Len int
	Cap int

	LoadFactor float64

	// Growths holds the number of times the table has doubled
	// since it was created or last cleared.
	Growths int

	// UsedBuckets holds the number of non-empty buckets.
	UsedBuckets int

	// LongestChain holds the number of entries in the fullest bucket.
	LongestChain int
}

// Stats returns statistics on the table. It takes time
// proportional to the number of buckets.
func (t *Table[V]) Stats() Stats {
	if t == nil {
		return Stats{LoadFactor: DefaultLoadFactor}
	}
	s := Stats{
		Len:        t.len,
		Cap:        t.Cap(),
		LoadFactor: t.LoadFactor(),
		Growths:    t.growths,
	}
	for _, chain := range t.buckets {
		if len(chain) > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = max(s.LongestChain, len(chain))
	}
	return s
}
