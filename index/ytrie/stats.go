package ytrie

// Stats describes the size of a built index.
type Stats struct {
	Keys      int // indexed keys
	Depth     int // floor(log2(max key))
	Blocks    int // blocks, ceil(Keys/Depth)
	TrieNodes int // recorded trie paths, leaves included
}

// Stats returns size counters for the built structure.
func (t *YTrie) Stats() Stats {
	return Stats{
		Keys:      len(t.keys),
		Depth:     t.depth,
		Blocks:    t.blocks.Len(),
		TrieNodes: len(t.lookup),
	}
}
